package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Lavender333/Aeraapp-sub001/i18n"
	"github.com/Lavender333/Aeraapp-sub001/models"
)

func newGapRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGapHandler(i18n.Default())
	r := gin.New()
	r.GET("/api/gap/tabs", h.Tabs)
	r.GET("/api/gap/tabs/:tab", h.TabByID)
	return r
}

type tabsPayload struct {
	Active models.TabID `json:"active"`
	Tabs   []TabContent `json:"tabs"`
}

func getTabs(t *testing.T, r *gin.Engine, url string) tabsPayload {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var out tabsPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func activeTabs(tabs []TabContent) []models.TabID {
	var ids []models.TabID
	for _, tab := range tabs {
		if tab.Active {
			ids = append(ids, tab.ID)
		}
	}
	return ids
}

func TestTabsDefaultIsGrants(t *testing.T) {
	r := newGapRouter()

	got := getTabs(t, r, "/api/gap/tabs")
	require.Equal(t, models.TabGrants, got.Active)
	require.Len(t, got.Tabs, 3)
	require.Equal(t, []models.TabID{models.TabGrants}, activeTabs(got.Tabs))
}

func TestTabsSelection(t *testing.T) {
	r := newGapRouter()

	for _, tab := range []models.TabID{models.TabGrants, models.TabAdvances, models.TabPayments} {
		got := getTabs(t, r, "/api/gap/tabs?active="+string(tab))
		require.Equal(t, tab, got.Active)
		require.Equal(t, []models.TabID{tab}, activeTabs(got.Tabs), "exactly one tab must be active")
	}
}

func TestTabsUnknownSelectionFallsBack(t *testing.T) {
	r := newGapRouter()

	got := getTabs(t, r, "/api/gap/tabs?active=refunds")
	require.Equal(t, models.TabGrants, got.Active)
	require.Equal(t, []models.TabID{models.TabGrants}, activeTabs(got.Tabs))
}

func TestTabByID(t *testing.T) {
	r := newGapRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gap/tabs/advances", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got TabContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, models.TabAdvances, got.ID)
	require.Equal(t, "Advances", got.Label)
	require.Equal(t, "Recovery Advances", got.Title)
	require.NotEmpty(t, got.Body)
	require.NotEmpty(t, got.Items)
}

func TestTabByIDUnknown(t *testing.T) {
	r := newGapRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gap/tabs/refunds", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
