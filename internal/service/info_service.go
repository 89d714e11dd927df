package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"FindThemAPI/internal/config"
	"FindThemAPI/internal/constant"
	"FindThemAPI/internal/helper"
	"FindThemAPI/internal/model"
	"FindThemAPI/internal/repository"

	"github.com/go-playground/validator/v10"
)

type InfoService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewInfoService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *InfoService {
	return &InfoService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

// Submit queues an info update for moderation. The report id is not checked
// against the report collections; a tip about an unknown or already-deleted
// report is accepted as-is.
func (s *InfoService) Submit(ctx context.Context, req model.SubmitInfoRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Info submission validation failed", "error", err)
		return 0, helper.NewBadRequestError("Missing required fields")
	}

	now := time.Now()
	info := model.InfoUpdate{
		ID:          helper.NewRecordID(),
		ReportID:    req.ReportID,
		Info:        req.Info,
		SubmittedBy: req.SubmittedBy,
		Status:      constant.StatusPending,
		SubmittedAt: &now,
	}

	err := s.repo.Info.Pending.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		return append(infos, info), nil
	})
	if err != nil {
		return 0, err
	}

	return info.ID, nil
}

func (s *InfoService) Approve(ctx context.Context, id int64) error {
	var approved model.InfoUpdate

	err := s.repo.Info.Pending.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		for i, info := range infos {
			if info.ID == id {
				approved = info
				return append(infos[:i], infos[i+1:]...), nil
			}
		}
		return nil, helper.NewNotFoundError("Info not found")
	})
	if err != nil {
		return err
	}

	now := time.Now()
	approved.Status = constant.StatusApproved
	approved.ApprovedAt = &now

	return s.repo.Info.Approved.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		return append(infos, approved), nil
	})
}

func (s *InfoService) Reject(ctx context.Context, id int64) error {
	return s.repo.Info.Pending.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		for i, info := range infos {
			if info.ID == id {
				return append(infos[:i], infos[i+1:]...), nil
			}
		}
		return nil, helper.NewNotFoundError("Info not found")
	})
}

// AdminAdd bypasses moderation entirely: the update lands in the approved
// collection with the submitter tagged as administrative.
func (s *InfoService) AdminAdd(ctx context.Context, req model.AdminAddInfoRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Admin info validation failed", "error", err)
		return 0, helper.NewBadRequestError("Missing required fields")
	}

	now := time.Now()
	info := model.InfoUpdate{
		ID:          helper.NewRecordID(),
		ReportID:    req.ReportID,
		Info:        req.Info,
		SubmittedBy: fmt.Sprintf("%s %s", constant.AdminMarker, req.AdminID),
		Status:      constant.StatusApproved,
		SubmittedAt: &now,
		ApprovedAt:  &now,
	}

	err := s.repo.Info.Approved.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		return append(infos, info), nil
	})
	if err != nil {
		return 0, err
	}

	return info.ID, nil
}

func (s *InfoService) AdminDelete(ctx context.Context, id int64) error {
	return s.repo.Info.Approved.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		for i, info := range infos {
			if info.ID == id {
				return append(infos[:i], infos[i+1:]...), nil
			}
		}
		return nil, helper.NewNotFoundError("Information not found")
	})
}

func (s *InfoService) ListForReport(ctx context.Context, reportID int64) []model.InfoUpdate {
	return s.repo.Info.ListForReport(reportID)
}

func (s *InfoService) ListPending(ctx context.Context) []model.InfoUpdate {
	return s.repo.Info.Pending.Load()
}
