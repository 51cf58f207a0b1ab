package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lavender333/Aeraapp-sub001/models"
)

// contractorTeams is the fixed roster shown on the recovery screen.
// There is no lifecycle: entries are never created, mutated, or removed.
var contractorTeams = []models.Contractor{
	{Name: "Riverside Debris Crew", Role: "Debris removal", Status: models.StatusOnSite, Verified: true},
	{Name: "Gulf Line Electric", Role: "Power line repair", Status: models.StatusDispatched, Verified: true},
	{Name: "Summit Water Works", Role: "Water system inspection", Status: models.StatusCompleted, Verified: false},
}

// TeamView is a contractor plus its derived badge color.
type TeamView struct {
	models.Contractor
	Badge string `json:"badge"`
}

// RecoveryHandler serves the static recovery-status screen.
type RecoveryHandler struct{}

func NewRecoveryHandler() *RecoveryHandler {
	return &RecoveryHandler{}
}

// TeamList returns the roster with badge colors applied.
func (h *RecoveryHandler) TeamList() []TeamView {
	teams := make([]TeamView, 0, len(contractorTeams))
	for _, team := range contractorTeams {
		teams = append(teams, TeamView{
			Contractor: team,
			Badge:      team.Status.BadgeColor(),
		})
	}
	return teams
}

// Teams handles GET /api/recovery/teams.
func (h *RecoveryHandler) Teams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": h.TeamList()})
}
