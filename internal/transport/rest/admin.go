package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/internal/service/admin"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	PendingReports(ctx context.Context, page domain.Page) ([]domain.Report, error)
	PendingUpdates(ctx context.Context, page domain.Page) ([]domain.CommunityUpdate, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
	VerifyRenovation(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
	NotifyNeighborhood(ctx context.Context, updateID uuid.UUID) (*admin.NotificationResult, error)
}

// reportModerator covers the report review transitions the admin surface
// re-exposes under /api/admin.
type reportModerator interface {
	Approve(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Report, error)
}

// updateModerator covers the community update verification toggles.
type updateModerator interface {
	Verify(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error)
	Unverify(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error)
}

// AdminHandler serves the admin dashboard REST endpoints.
type AdminHandler struct {
	svc     adminService
	reports reportModerator
	updates updateModerator
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, reports reportModerator, updates updateModerator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		reports: reports,
		updates: updates,
		log:     logger.With("handler", "admin"),
	}
}

type adminStatsResponse struct {
	TotalProperties       int `json:"totalProperties"`
	VerifiedProperties    int `json:"verifiedProperties"`
	TotalReports          int `json:"totalReports"`
	PendingReports        int `json:"pendingReports"`
	TotalUsers            int `json:"totalUsers"`
	TotalCommunityUpdates int `json:"totalCommunityUpdates"`
}

type notificationResponse struct {
	UpdateID       string    `json:"updateId"`
	NeighborhoodID string    `json:"neighborhoodId"`
	NotifiedAt     time.Time `json:"notifiedAt"`
}

// PendingReports handles GET /api/admin/pending-reports.
func (h *AdminHandler) PendingReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.PendingReports(r.Context(), parsePage(r))
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

// PendingUpdates handles GET /api/admin/pending-updates.
func (h *AdminHandler) PendingUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := h.svc.PendingUpdates(r.Context(), parsePage(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]communityUpdateResponse, 0, len(updates))
	for i := range updates {
		resp = append(resp, toCommunityUpdateResponse(&updates[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ApproveReport handles PATCH /api/admin/approve-report/{id}.
func (h *AdminHandler) ApproveReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rep, err := h.reports.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// RejectReport handles PATCH /api/admin/reject-report/{id}.
func (h *AdminHandler) RejectReport(w http.ResponseWriter, r *http.Request) {
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

	rep, err := h.reports.Reject(r.Context(), id, req.Reason)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// ApproveUpdate handles PATCH /api/admin/approve-update/{id}.
func (h *AdminHandler) ApproveUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	upd, err := h.updates.Verify(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommunityUpdateResponse(upd))
}

// RejectUpdate handles PATCH /api/admin/reject-update/{id}. The update stays
// in place with is_verified cleared.
func (h *AdminHandler) RejectUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	upd, err := h.updates.Unverify(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommunityUpdateResponse(upd))
}

// VerifyRenovation handles PATCH /api/admin/verify-renovation/{id}.
func (h *AdminHandler) VerifyRenovation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ren, err := h.svc.VerifyRenovation(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRenovationResponse(ren))
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adminStatsResponse{
		TotalProperties:       stats.TotalProperties,
		VerifiedProperties:    stats.VerifiedProperties,
		TotalReports:          stats.TotalReports,
		PendingReports:        stats.PendingReports,
		TotalUsers:            stats.TotalUsers,
		TotalCommunityUpdates: stats.TotalCommunityUpdates,
	})
}

// NotifyNeighborhood handles POST /api/admin/notify-neighborhood/{id}.
func (h *AdminHandler) NotifyNeighborhood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.svc.NotifyNeighborhood(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notificationResponse{
		UpdateID:       result.UpdateID.String(),
		NeighborhoodID: result.NeighborhoodID,
		NotifiedAt:     result.NotifiedAt,
	})
}
