package model

import (
	"time"

	"FindThemAPI/internal/constant"
)

// Report is a missing-person report record. JSON keys follow the shape the
// frontend consumes; lastSeen stays camelCase for that reason.
type Report struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Age         int             `json:"age"`
	Height      int             `json:"height"`
	LastSeen    string          `json:"lastSeen"`
	Location    string          `json:"location"`
	Image       string          `json:"image"`
	SubmittedBy string          `json:"submitted_by,omitempty"`
	Status      constant.Status `json:"status,omitempty"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// InfoUpdate is a supplementary piece of information attached to a report.
// ReportID is best-effort only; it is never checked against the report
// collections on submission.
type InfoUpdate struct {
	ID          int64           `json:"id"`
	ReportID    int64           `json:"report_id"`
	Info        string          `json:"info"`
	SubmittedBy string          `json:"submitted_by"`
	Status      constant.Status `json:"status"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
}
