package service

import (
	"context"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"FindThemAPI/internal/adapter"
	"FindThemAPI/internal/config"
	"FindThemAPI/internal/constant"
	"FindThemAPI/internal/helper"
	"FindThemAPI/internal/model"
	"FindThemAPI/internal/repository"

	"github.com/go-playground/validator/v10"
)

type ReportService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
	storage   *adapter.StorageAdapter
}

func NewReportService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate, storage *adapter.StorageAdapter) *ReportService {
	return &ReportService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
		storage:   storage,
	}
}

// Submit is the moderated submission path. The photo, if any, is inlined as a
// data URI so the pending record is self-contained; nothing touches the
// uploads directory until a report is actually published via the legacy form.
func (s *ReportService) Submit(ctx context.Context, req model.SubmitReportRequest, photo *multipart.FileHeader) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Report submission validation failed", "error", err)
		return 0, helper.NewBadRequestError("All fields are required")
	}

	image := ""
	if photo != nil && photo.Filename != "" {
		var err error
		image, err = helper.EncodeImageDataURI(photo)
		if err != nil {
			slog.Error("Failed to encode uploaded photo", "error", err)
			return 0, helper.NewInternalServerError("")
		}
	}

	now := time.Now()
	report := model.Report{
		ID:          helper.NewRecordID(),
		Name:        req.Name,
		Age:         req.Age,
		Height:      req.Height,
		LastSeen:    req.LastSeen,
		Location:    req.Location,
		Image:       image,
		SubmittedBy: req.SubmittedBy,
		Status:      constant.StatusPending,
		SubmittedAt: &now,
	}

	err := s.repo.Report.Pending.Update(func(reports []model.Report) ([]model.Report, error) {
		return append(reports, report), nil
	})
	if err != nil {
		return 0, err
	}

	return report.ID, nil
}

// SubmitLegacy is the unmoderated submission form kept for backward
// compatibility: the photo is written to static storage and the record goes
// straight to the approved collection.
func (s *ReportService) SubmitLegacy(ctx context.Context, req model.LegacySubmitRequest, photo *multipart.FileHeader) error {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Legacy submission validation failed", "error", err)
		return helper.NewBadRequestError("All fields are required")
	}

	if photo == nil || photo.Filename == "" {
		return helper.NewBadRequestError("No selected file")
	}
	if !helper.IsAllowedImage(photo.Filename) {
		return helper.NewBadRequestError("Invalid file type")
	}

	fileName := helper.GenerateUniqueFileName(photo.Filename)
	imageRef, err := s.storage.Store(photo, fileName)
	if err != nil {
		slog.Error("Failed to store uploaded photo", "error", err)
		return helper.NewInternalServerError("")
	}

	now := time.Now()
	report := model.Report{
		ID:          helper.NewRecordID(),
		Name:        req.Name,
		Age:         req.Age,
		Height:      req.Height,
		LastSeen:    req.LastSeen,
		Location:    req.Location,
		Image:       imageRef,
		Status:      constant.StatusApproved,
		SubmittedAt: &now,
	}

	return s.repo.Report.Approved.Update(func(reports []model.Report) ([]model.Report, error) {
		return append(reports, report), nil
	})
}

func (s *ReportService) Approve(ctx context.Context, id int64) error {
	var approved model.Report

	err := s.repo.Report.Pending.Update(func(reports []model.Report) ([]model.Report, error) {
		for i, r := range reports {
			if r.ID == id {
				approved = r
				return append(reports[:i], reports[i+1:]...), nil
			}
		}
		return nil, helper.NewNotFoundError("Report not found")
	})
	if err != nil {
		return err
	}

	now := time.Now()
	approved.Status = constant.StatusApproved
	approved.ApprovedAt = &now

	return s.repo.Report.Approved.Update(func(reports []model.Report) ([]model.Report, error) {
		return append(reports, approved), nil
	})
}

func (s *ReportService) Reject(ctx context.Context, id int64) error {
	return s.repo.Report.Pending.Update(func(reports []model.Report) ([]model.Report, error) {
		for i, r := range reports {
			if r.ID == id {
				return append(reports[:i], reports[i+1:]...), nil
			}
		}
		return nil, helper.NewNotFoundError("Report not found")
	})
}

// ListApproved returns the published reports, optionally filtered by a
// case-insensitive substring match on name or location.
func (s *ReportService) ListApproved(ctx context.Context, search string) []model.Report {
	reports := s.repo.Report.Approved.Load()
	if search == "" {
		return reports
	}

	search = strings.ToLower(search)
	matches := []model.Report{}
	for _, r := range reports {
		if strings.Contains(strings.ToLower(r.Name), search) ||
			strings.Contains(strings.ToLower(r.Location), search) {
			matches = append(matches, r)
		}
	}
	return matches
}

func (s *ReportService) ListPending(ctx context.Context) []model.Report {
	return s.repo.Report.Pending.Load()
}

// Update merges the provided fields into an approved report. Absent fields
// are left untouched.
func (s *ReportService) Update(ctx context.Context, id int64, req model.UpdateReportRequest) (*model.Report, error) {
	var updated model.Report

	err := s.repo.Report.Approved.Update(func(reports []model.Report) ([]model.Report, error) {
		for i := range reports {
			if reports[i].ID != id {
				continue
			}

			if req.Name != nil {
				reports[i].Name = *req.Name
			}
			if req.Age != nil {
				reports[i].Age = *req.Age
			}
			if req.Height != nil {
				reports[i].Height = *req.Height
			}
			if req.Location != nil {
				reports[i].Location = *req.Location
			}
			if req.LastSeen != nil {
				reports[i].LastSeen = *req.LastSeen
			}

			now := time.Now()
			reports[i].UpdatedAt = &now
			updated = reports[i]
			return reports, nil
		}
		return nil, helper.NewNotFoundError("Report not found")
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes an approved report and cascades over its approved info
// updates. Pending info updates referencing the report are left alone, as in
// the original system.
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Report.Approved.Update(func(reports []model.Report) ([]model.Report, error) {
		for i, r := range reports {
			if r.ID == id {
				return append(reports[:i], reports[i+1:]...), nil
			}
		}
		return nil, helper.NewNotFoundError("Report not found")
	})
	if err != nil {
		return err
	}

	return s.repo.Info.Approved.Update(func(infos []model.InfoUpdate) ([]model.InfoUpdate, error) {
		kept := infos[:0]
		for _, info := range infos {
			if info.ReportID != id {
				kept = append(kept, info)
			}
		}
		return kept, nil
	})
}
