package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lavender333/Aeraapp-sub001/i18n"
	"github.com/Lavender333/Aeraapp-sub001/models"
)

// PagesHandler renders the server-side screens. Each page gets the
// injected translation table plus the data its view needs.
type PagesHandler struct {
	tr       *i18n.Table
	gap      *GapHandler
	recovery *RecoveryHandler
}

func NewPagesHandler(tr *i18n.Table, gap *GapHandler, recovery *RecoveryHandler) *PagesHandler {
	return &PagesHandler{tr: tr, gap: gap, recovery: recovery}
}

// Alerts renders the alerts screen.
func (h *PagesHandler) Alerts(c *gin.Context) {
	c.HTML(http.StatusOK, "alerts.html", gin.H{
		"Tr":     h.tr,
		"View":   models.ViewAlerts,
		"Topics": QuickTopics,
	})
}

// Gap renders the funding-assistance screen. An unknown tab in the query
// string falls back to the default tab.
func (h *PagesHandler) Gap(c *gin.Context) {
	active := ParseTab(c.DefaultQuery("tab", string(DefaultTab)))
	c.HTML(http.StatusOK, "gap.html", gin.H{
		"Tr":      h.tr,
		"View":    models.ViewGap,
		"Active":  active,
		"Tabs":    h.gap.TabList(active),
		"Content": h.gap.Content(active, true),
	})
}

// Recovery renders the recovery-status screen.
func (h *PagesHandler) Recovery(c *gin.Context) {
	c.HTML(http.StatusOK, "recovery.html", gin.H{
		"Tr":    h.tr,
		"View":  models.ViewRecovery,
		"Teams": h.recovery.TeamList(),
	})
}
