package model

// SubmitReportRequest carries the parsed multipart fields of the moderated
// submission path. Age and Height are parsed from their form values before
// validation; presence and parseability are enforced by the controller, so
// zero is a legal value for both.
type SubmitReportRequest struct {
	Name        string `validate:"required"`
	Age         int
	Height      int
	LastSeen    string `validate:"required"`
	Location    string `validate:"required"`
	SubmittedBy string `validate:"required"`
}

// LegacySubmitRequest carries the fields of the unmoderated submission form.
// It has no submitter; the form predates moderation.
type LegacySubmitRequest struct {
	Name     string `validate:"required"`
	Age      int
	Height   int
	LastSeen string `validate:"required"`
	Location string `validate:"required"`
}

// UpdateReportRequest is a partial update; nil fields are left untouched.
type UpdateReportRequest struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Height   *int    `json:"height"`
	Location *string `json:"location"`
	LastSeen *string `json:"lastSeen"`
}

type SubmitReportResponse struct {
	Message  string `json:"message"`
	ReportID int64  `json:"report_id"`
}

type UpdateReportResponse struct {
	Message string `json:"message"`
	Report  Report `json:"report"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
