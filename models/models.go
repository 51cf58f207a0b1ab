package models

import (
	"time"

	"github.com/google/uuid"
)

// ViewState identifies a full-screen view in the app's navigation model.
type ViewState string

const (
	ViewDashboard ViewState = "dashboard"
	ViewAlerts    ViewState = "alerts"
	ViewGap       ViewState = "gap"
	ViewRecovery  ViewState = "recovery"
)

// SourceRef is a single web citation attached to a search summary.
type SourceRef struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SearchResult is the outcome of one grounded search call. It is built
// fresh per call and replaced wholesale on the next one.
type SearchResult struct {
	Summary string      `json:"summary"`
	Sources []SourceRef `json:"sources"`
}

// TabID selects a content block on the funding-gap screen.
type TabID string

const (
	TabGrants   TabID = "grants"
	TabAdvances TabID = "advances"
	TabPayments TabID = "payments"
)

// ContractorStatus is the deployment state of a recovery team.
type ContractorStatus string

const (
	StatusOnSite     ContractorStatus = "On-site"
	StatusDispatched ContractorStatus = "Dispatched"
	StatusCompleted  ContractorStatus = "Completed"
)

// BadgeColor maps a status to its badge color on the recovery screen.
func (s ContractorStatus) BadgeColor() string {
	switch s {
	case StatusCompleted:
		return "green"
	case StatusOnSite:
		return "blue"
	case StatusDispatched:
		return "yellow"
	}
	return "gray"
}

// Contractor is one entry in the fixed recovery roster.
type Contractor struct {
	Name     string           `json:"name"`
	Role     string           `json:"role"`
	Status   ContractorStatus `json:"status"`
	Verified bool             `json:"verified"`
}

// SearchRecord is one row of the persisted search history.
type SearchRecord struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Query       string    `json:"query"`
	Summary     string    `json:"summary"`
	SourceCount int       `json:"source_count"`
	DurationMs  int64     `json:"duration_ms"`
	Failed      bool      `json:"failed"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// NewSearchRecord starts a history row for the given query.
func NewSearchRecord(query string) SearchRecord {
	return SearchRecord{
		ID:        uuid.NewString(),
		Query:     query,
		CreatedAt: time.Now().UTC(),
	}
}
