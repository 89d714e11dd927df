package controller

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"FindThemAPI/internal/helper"
	"FindThemAPI/internal/model"
	"FindThemAPI/internal/service"

	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

type ReportController struct {
	reportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// parseIDParam reads an integer path parameter. A non-integer id behaves like
// an unknown route, matching the original int converter semantics.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, helper.NewNotFoundError("")
	}
	return id, nil
}

// formFile returns the named upload, or nil when the part is absent.
func formFile(r *http.Request, name string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[name]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// List godoc
// @Summary      List Reports
// @Description  Public listing of approved reports with optional search filter.
// @Tags         report
// @Produce      json
// @Param        search query string false "Case-insensitive name/location filter"
// @Success      200  {array}  model.Report
// @Router       /api/reports [get]
func (c *ReportController) List(w http.ResponseWriter, r *http.Request) {
	reports := c.reportService.ListApproved(r.Context(), r.URL.Query().Get("search"))
	helper.WriteJSON(w, http.StatusOK, reports)
}

// Submit godoc
// @Summary      Submit Report
// @Description  Submit a missing-person report for moderation. The photo is inlined as a data URI.
// @Tags         report
// @Accept       multipart/form-data
// @Produce      json
// @Param        personName formData string true "Name"
// @Param        age formData int true "Age"
// @Param        height formData int true "Height (cm)"
// @Param        lastSeen formData string true "Last seen date"
// @Param        place formData string true "Last known location"
// @Param        submitted_by formData string true "Submitter user id"
// @Param        photo formData file false "Photo"
// @Success      201  {object}  model.SubmitReportResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/reports/submit [post]
func (c *ReportController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Warn("Invalid multipart form", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	req, err := parseSubmitForm(r)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	reportID, err := c.reportService.Submit(r.Context(), req, formFile(r, "photo"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusCreated, model.SubmitReportResponse{
		Message:  "Report submitted successfully",
		ReportID: reportID,
	})
}

func parseSubmitForm(r *http.Request) (model.SubmitReportRequest, error) {
	req := model.SubmitReportRequest{
		Name:        r.FormValue("personName"),
		LastSeen:    r.FormValue("lastSeen"),
		Location:    r.FormValue("place"),
		SubmittedBy: r.FormValue("submitted_by"),
	}

	ageStr := r.FormValue("age")
	heightStr := r.FormValue("height")
	if req.Name == "" || ageStr == "" || heightStr == "" || req.LastSeen == "" || req.Location == "" || req.SubmittedBy == "" {
		return req, helper.NewBadRequestError("All fields are required")
	}

	var err error
	if req.Age, err = strconv.Atoi(ageStr); err != nil {
		return req, helper.NewBadRequestError("Age and height must be numbers")
	}
	if req.Height, err = strconv.Atoi(heightStr); err != nil {
		return req, helper.NewBadRequestError("Age and height must be numbers")
	}

	return req, nil
}

// SubmitLegacy godoc
// @Summary      Submit Report (legacy form)
// @Description  Unmoderated submission kept for the original HTML form; writes straight to the approved collection.
// @Tags         report
// @Accept       multipart/form-data
// @Produce      json
// @Param        personName formData string true "Name"
// @Param        age formData int true "Age"
// @Param        height formData int true "Height (cm)"
// @Param        lastSeen formData string true "Last seen date"
// @Param        place formData string true "Last known location"
// @Param        photo formData file true "Photo"
// @Success      201  {object}  model.MessageResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /submit-details [post]
func (c *ReportController) SubmitLegacy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Warn("Invalid multipart form", "error", err)
		helper.WriteError(w, helper.NewBadRequestError("No file part"))
		return
	}

	photo := formFile(r, "photo")
	if photo == nil {
		helper.WriteError(w, helper.NewBadRequestError("No file part"))
		return
	}

	req, err := parseLegacyForm(r)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.reportService.SubmitLegacy(r.Context(), req, photo); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusCreated, model.MessageResponse{
		Message: "Report submitted successfully",
	})
}

func parseLegacyForm(r *http.Request) (model.LegacySubmitRequest, error) {
	req := model.LegacySubmitRequest{
		Name:     r.FormValue("personName"),
		LastSeen: r.FormValue("lastSeen"),
		Location: r.FormValue("place"),
	}

	ageStr := r.FormValue("age")
	heightStr := r.FormValue("height")
	if req.Name == "" || ageStr == "" || heightStr == "" || req.LastSeen == "" || req.Location == "" {
		return req, helper.NewBadRequestError("All fields are required")
	}

	var err error
	if req.Age, err = strconv.Atoi(ageStr); err != nil {
		return req, helper.NewBadRequestError("Age and height must be numbers")
	}
	if req.Height, err = strconv.Atoi(heightStr); err != nil {
		return req, helper.NewBadRequestError("Age and height must be numbers")
	}

	return req, nil
}

// ListPending godoc
// @Summary      List Pending Reports
// @Description  Moderation queue for the admin dashboard.
// @Tags         report
// @Produce      json
// @Success      200  {array}  model.Report
// @Router       /api/reports/pending [get]
func (c *ReportController) ListPending(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, c.reportService.ListPending(r.Context()))
}

// Approve godoc
// @Summary      Approve Report
// @Description  Move a pending report to the published collection.
// @Tags         report
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/reports/approve/{id} [post]
func (c *ReportController) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.reportService.Approve(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: "Report approved successfully",
	})
}

// Reject godoc
// @Summary      Reject Report
// @Description  Remove a pending report permanently.
// @Tags         report
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/reports/reject/{id} [post]
func (c *ReportController) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.reportService.Reject(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: "Report rejected successfully",
	})
}

// AdminList godoc
// @Summary      Admin List Reports
// @Description  All approved reports for the admin dashboard.
// @Tags         admin
// @Produce      json
// @Success      200  {array}  model.Report
// @Router       /api/admin/reports [get]
func (c *ReportController) AdminList(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, c.reportService.ListApproved(r.Context(), ""))
}

// AdminUpdate godoc
// @Summary      Admin Update Report
// @Description  Partial update of an approved report; absent fields are left untouched.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Report ID"
// @Param        request body model.UpdateReportRequest true "Fields to update"
// @Success      200  {object}  model.UpdateReportResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Router       /api/admin/reports/{id} [put]
func (c *ReportController) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	var req model.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	report, err := c.reportService.Update(r.Context(), id, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.UpdateReportResponse{
		Message: "Report updated successfully",
		Report:  *report,
	})
}

// AdminDelete godoc
// @Summary      Admin Delete Report
// @Description  Delete an approved report and cascade over its approved info updates.
// @Tags         admin
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/admin/reports/{id} [delete]
func (c *ReportController) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.reportService.Delete(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: "Report and associated information deleted successfully",
	})
}
