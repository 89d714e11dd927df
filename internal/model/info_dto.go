package model

type SubmitInfoRequest struct {
	ReportID    int64  `json:"report_id" validate:"required"`
	Info        string `json:"info" validate:"required"`
	SubmittedBy string `json:"submitted_by" validate:"required"`
}

type AdminAddInfoRequest struct {
	ReportID int64  `json:"report_id" validate:"required"`
	Info     string `json:"info" validate:"required"`
	AdminID  string `json:"admin_id" validate:"required"`
}

type SubmitInfoResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
