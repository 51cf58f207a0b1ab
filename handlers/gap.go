package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lavender333/Aeraapp-sub001/i18n"
	"github.com/Lavender333/Aeraapp-sub001/models"
)

// DefaultTab is the tab shown when the gap screen opens.
const DefaultTab = models.TabGrants

// tabOrder fixes the display order of the funding tabs.
var tabOrder = []models.TabID{models.TabGrants, models.TabAdvances, models.TabPayments}

// FundingItem is a single program listed inside a tab's content block.
type FundingItem struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Deadline string `json:"deadline"`
}

// TabContent is the fixed content block for one funding tab.
type TabContent struct {
	ID     models.TabID  `json:"id"`
	Label  string        `json:"label"`
	Title  string        `json:"title"`
	Body   string        `json:"body"`
	Items  []FundingItem `json:"items"`
	Active bool          `json:"active"`
}

// GapHandler serves the funding-assistance screen. All content is static;
// the only state is which tab is selected.
type GapHandler struct {
	tr *i18n.Table
}

func NewGapHandler(tr *i18n.Table) *GapHandler {
	return &GapHandler{tr: tr}
}

// fundingItems holds the static program listings per tab.
var fundingItems = map[models.TabID][]FundingItem{
	models.TabGrants: {
		{Name: "Emergency Household Grant", Amount: "up to $2,500", Deadline: "rolling"},
		{Name: "Temporary Shelter Grant", Amount: "up to $1,200", Deadline: "rolling"},
	},
	models.TabAdvances: {
		{Name: "Repair Award Advance", Amount: "50% of award", Deadline: "30 days after approval"},
	},
	models.TabPayments: {
		{Name: "Housing Support Payment", Amount: "monthly", Deadline: "ongoing"},
		{Name: "Rebuild Disbursement", Amount: "per milestone", Deadline: "ongoing"},
	},
}

// ParseTab maps a raw tab value to a known tab, falling back to the default.
func ParseTab(raw string) models.TabID {
	switch models.TabID(raw) {
	case models.TabGrants, models.TabAdvances, models.TabPayments:
		return models.TabID(raw)
	}
	return DefaultTab
}

// Content builds the content block for one tab.
func (h *GapHandler) Content(tab models.TabID, active bool) TabContent {
	key := string(tab)
	return TabContent{
		ID:     tab,
		Label:  h.tr.T("gap.tab." + key),
		Title:  h.tr.T("gap." + key + ".title"),
		Body:   h.tr.T("gap." + key + ".body"),
		Items:  fundingItems[tab],
		Active: active,
	}
}

// TabList builds all tabs with exactly one marked active.
func (h *GapHandler) TabList(active models.TabID) []TabContent {
	tabs := make([]TabContent, 0, len(tabOrder))
	for _, id := range tabOrder {
		tabs = append(tabs, h.Content(id, id == active))
	}
	return tabs
}

// Tabs handles GET /api/gap/tabs.
func (h *GapHandler) Tabs(c *gin.Context) {
	active := ParseTab(c.DefaultQuery("active", string(DefaultTab)))
	c.JSON(http.StatusOK, gin.H{
		"active": active,
		"tabs":   h.TabList(active),
	})
}

// TabByID handles GET /api/gap/tabs/:tab.
func (h *GapHandler) TabByID(c *gin.Context) {
	raw := c.Param("tab")
	tab := ParseTab(raw)
	if string(tab) != raw {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown tab"})
		return
	}
	c.JSON(http.StatusOK, h.Content(tab, true))
}
