package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Create(ctx context.Context, input report.CreateReportInput) (*domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	Update(ctx context.Context, id uuid.UUID, input report.UpdateReportInput) (*domain.Report, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Report, error)
}

// ReportHandler serves report REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type createReportRequest struct {
	PropertyID  string         `json:"propertyId"`
	ReportType  string         `json:"reportType"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	ReportData  map[string]any `json:"reportData,omitempty"`
	Attachments []string       `json:"attachments,omitempty"`
}

type updateReportRequest struct {
	ReportType  *string        `json:"reportType"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	ReportData  map[string]any `json:"reportData"`
	Attachments []string       `json:"attachments"`
}

type rejectReportRequest struct {
	Reason string `json:"reason"`
}

type reportResponse struct {
	ID          string         `json:"id"`
	PropertyID  string         `json:"propertyId"`
	SubmitterID string         `json:"submitterId"`
	ReportType  string         `json:"reportType"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	ReportData  map[string]any `json:"reportData,omitempty"`
	Attachments []string       `json:"attachments,omitempty"`
	Status      string         `json:"status"`
	ReviewedBy  *string        `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time     `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Create handles POST /api/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid propertyId")
		return
	}

	rep, err := h.svc.Create(r.Context(), report.CreateReportInput{
		PropertyID:  propertyID,
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
		ReportData:  req.ReportData,
		Attachments: req.Attachments,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}

// Get handles GET /api/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rep, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// List handles GET /api/reports with property/status/type filters.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReportFilter{
		ReportType: queryString(r, "report_type"),
		Page:       parsePage(r),
	}
	if v := queryString(r, "property_id"); v != nil {
		propertyID, err := uuid.Parse(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid property_id")
			return
		}
		filter.PropertyID = &propertyID
	}
	if v := queryString(r, "status"); v != nil {
		status := domain.ReportStatus(*v)
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}

	reports, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]reportResponse, 0, len(reports))
	for i := range reports {
		resp = append(resp, toReportResponse(&reports[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/reports/{id} with merge-patch semantics.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.svc.Update(r.Context(), id, report.UpdateReportInput{
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
		ReportData:  req.ReportData,
		Attachments: req.Attachments,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Approve handles PATCH /api/reports/{id}/approve.
func (h *ReportHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rep, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Reject handles PATCH /api/reports/{id}/reject.
func (h *ReportHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req rejectReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.svc.Reject(r.Context(), id, req.Reason)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

func toReportResponse(rep *domain.Report) reportResponse {
	resp := reportResponse{
		ID:          rep.ID.String(),
		PropertyID:  rep.PropertyID.String(),
		SubmitterID: rep.SubmitterID.String(),
		ReportType:  rep.ReportType,
		Title:       rep.Title,
		Description: rep.Description,
		ReportData:  rep.ReportData,
		Attachments: rep.Attachments,
		Status:      rep.Status.String(),
		ReviewedAt:  rep.ReviewedAt,
		CreatedAt:   rep.CreatedAt,
		UpdatedAt:   rep.UpdatedAt,
	}
	if rep.ReviewedBy != nil {
		reviewer := rep.ReviewedBy.String()
		resp.ReviewedBy = &reviewer
	}
	return resp
}
