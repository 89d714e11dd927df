package repository

import (
	"FindThemAPI/internal/constant"
	"FindThemAPI/internal/model"
)

// ReportRepository owns the two report collections. A report lives in exactly
// one of them at any time; approval moves it across.
type ReportRepository struct {
	Approved *Collection[model.Report]
	Pending  *Collection[model.Report]
}

func NewReportRepository(dataDir string) *ReportRepository {
	return &ReportRepository{
		Approved: NewCollection[model.Report](dataDir, constant.CollectionReports),
		Pending:  NewCollection[model.Report](dataDir, constant.CollectionPendingReports),
	}
}

// FindApproved scans the approved collection for an id.
func (r *ReportRepository) FindApproved(id int64) (model.Report, bool) {
	for _, report := range r.Approved.Load() {
		if report.ID == id {
			return report, true
		}
	}
	return model.Report{}, false
}
