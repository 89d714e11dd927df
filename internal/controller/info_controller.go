package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"FindThemAPI/internal/helper"
	"FindThemAPI/internal/model"
	"FindThemAPI/internal/service"
)

type InfoController struct {
	infoService *service.InfoService
}

func NewInfoController(infoService *service.InfoService) *InfoController {
	return &InfoController{
		infoService: infoService,
	}
}

// Submit godoc
// @Summary      Submit Info
// @Description  Submit new information about a report for moderation. The report id is not verified.
// @Tags         info
// @Accept       json
// @Produce      json
// @Param        request body model.SubmitInfoRequest true "Info Request"
// @Success      201  {object}  model.SubmitInfoResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/report-info/submit [post]
func (c *InfoController) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	id, err := c.infoService.Submit(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusCreated, model.SubmitInfoResponse{
		Message: "Information submitted for review",
		ID:      id,
	})
}

// Approve godoc
// @Summary      Approve Info
// @Description  Move a pending info update to the approved collection.
// @Tags         info
// @Produce      json
// @Param        id path int true "Info ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/report-info/approve/{id} [post]
func (c *InfoController) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.infoService.Approve(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: "Information approved successfully",
	})
}

// Reject godoc
// @Summary      Reject Info
// @Description  Remove a pending info update permanently.
// @Tags         info
// @Produce      json
// @Param        id path int true "Info ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/report-info/reject/{id} [post]
func (c *InfoController) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.infoService.Reject(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: "Information rejected successfully",
	})
}

// ListForReport godoc
// @Summary      List Info For Report
// @Description  Approved info updates attached to one report.
// @Tags         info
// @Produce      json
// @Param        report_id path int true "Report ID"
// @Success      200  {array}  model.InfoUpdate
// @Router       /api/report-info/{report_id} [get]
func (c *InfoController) ListForReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := parseIDParam(r, "report_id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, c.infoService.ListForReport(r.Context(), reportID))
}

// ListPending godoc
// @Summary      List Pending Info
// @Description  Whole pending-info collection for the moderation dashboard.
// @Tags         info
// @Produce      json
// @Success      200  {array}  model.InfoUpdate
// @Router       /api/pending-info [get]
func (c *InfoController) ListPending(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, c.infoService.ListPending(r.Context()))
}

// AdminAdd godoc
// @Summary      Admin Add Info
// @Description  Add information directly to the approved collection, tagged as administrative.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body model.AdminAddInfoRequest true "Admin Info Request"
// @Success      201  {object}  model.SubmitInfoResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/admin/report-info/add [post]
func (c *InfoController) AdminAdd(w http.ResponseWriter, r *http.Request) {
	var req model.AdminAddInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	id, err := c.infoService.AdminAdd(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusCreated, model.SubmitInfoResponse{
		Message: "Information added successfully",
		ID:      id,
	})
}

// AdminDelete godoc
// @Summary      Admin Delete Info
// @Description  Remove an approved info update.
// @Tags         admin
// @Produce      json
// @Param        id path int true "Info ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/admin/report-info/{id} [delete]
func (c *InfoController) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if err := c.infoService.AdminDelete(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteJSON(w, http.StatusOK, model.MessageResponse{
		Message: "Information deleted successfully",
	})
}
