package constant

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// AdminMarker prefixes submitted_by on info updates added directly by an admin.
const AdminMarker = "[ADMIN]"

// Collection file names under the data directory.
const (
	CollectionUsers          = "users"
	CollectionReports        = "reports"
	CollectionPendingReports = "pending_reports"
	CollectionPendingInfo    = "pending_info_updates"
	CollectionApprovedInfo   = "approved_info_updates"
)

// AllowedImageExtensions are the upload extensions accepted by the legacy
// submission form.
var AllowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}
