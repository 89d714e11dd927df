package repository

import (
	"FindThemAPI/internal/constant"
	"FindThemAPI/internal/model"
)

type InfoRepository struct {
	Approved *Collection[model.InfoUpdate]
	Pending  *Collection[model.InfoUpdate]
}

func NewInfoRepository(dataDir string) *InfoRepository {
	return &InfoRepository{
		Approved: NewCollection[model.InfoUpdate](dataDir, constant.CollectionApprovedInfo),
		Pending:  NewCollection[model.InfoUpdate](dataDir, constant.CollectionPendingInfo),
	}
}

// ListForReport filters the approved collection by report id.
func (r *InfoRepository) ListForReport(reportID int64) []model.InfoUpdate {
	matches := []model.InfoUpdate{}
	for _, info := range r.Approved.Load() {
		if info.ReportID == reportID {
			matches = append(matches, info)
		}
	}
	return matches
}
