package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/internal/service/community"
)

// communityService defines the minimal interface needed by CommunityHandler.
type communityService interface {
	Create(ctx context.Context, input community.CreateUpdateInput) (*domain.CommunityUpdate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error)
	List(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error)
	Update(ctx context.Context, id uuid.UUID, input community.UpdateUpdateInput) (*domain.CommunityUpdate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommunityHandler serves community update REST endpoints.
type CommunityHandler struct {
	svc communityService
	log *slog.Logger
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(svc communityService, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{svc: svc, log: logger.With("handler", "community")}
}

type createUpdateRequest struct {
	PropertyID     *string        `json:"propertyId,omitempty"`
	NeighborhoodID *string        `json:"neighborhoodId,omitempty"`
	UpdateType     string         `json:"updateType"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ImpactLevel    string         `json:"impactLevel"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Location       map[string]any `json:"location,omitempty"`
}

type updateUpdateRequest struct {
	UpdateType  *string        `json:"updateType"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	ImpactLevel *string        `json:"impactLevel"`
	StartDate   *time.Time     `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	Location    map[string]any `json:"location"`
}

type communityUpdateResponse struct {
	ID             string         `json:"id"`
	PropertyID     *string        `json:"propertyId,omitempty"`
	NeighborhoodID *string        `json:"neighborhoodId,omitempty"`
	UpdateType     string         `json:"updateType"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ImpactLevel    string         `json:"impactLevel"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Location       map[string]any `json:"location,omitempty"`
	IsVerified     bool           `json:"isVerified"`
	CreatedBy      string         `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Create handles POST /api/community.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := community.CreateUpdateInput{
		NeighborhoodID: req.NeighborhoodID,
		UpdateType:     req.UpdateType,
		Title:          req.Title,
		Description:    req.Description,
		ImpactLevel:    req.ImpactLevel,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
	}
	if req.PropertyID != nil {
		propertyID, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid propertyId")
			return
		}
		input.PropertyID = &propertyID
	}

	upd, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommunityUpdateResponse(upd))
}

// Get handles GET /api/community/{id}.
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	upd, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommunityUpdateResponse(upd))
}

// List handles GET /api/community with neighborhood/type/impact filters.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CommunityUpdateFilter{
		NeighborhoodID: queryString(r, "neighborhood_id"),
		UpdateType:     queryString(r, "update_type"),
		Page:           parsePage(r),
	}
	if v := queryString(r, "impact_level"); v != nil {
		lvl := domain.ImpactLevel(*v)
		if !lvl.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid impact_level")
			return
		}
		filter.ImpactLevel = &lvl
	}

	updates, err := h.svc.List(r.Context(), filter)
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

// Update handles PUT /api/community/{id} with merge-patch semantics.
func (h *CommunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd, err := h.svc.Update(r.Context(), id, community.UpdateUpdateInput{
		UpdateType:  req.UpdateType,
		Title:       req.Title,
		Description: req.Description,
		ImpactLevel: req.ImpactLevel,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommunityUpdateResponse(upd))
}

// Delete handles DELETE /api/community/{id}.
func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toCommunityUpdateResponse(upd *domain.CommunityUpdate) communityUpdateResponse {
	resp := communityUpdateResponse{
		ID:             upd.ID.String(),
		NeighborhoodID: upd.NeighborhoodID,
		UpdateType:     upd.UpdateType,
		Title:          upd.Title,
		Description:    upd.Description,
		ImpactLevel:    upd.ImpactLevel.String(),
		StartDate:      upd.StartDate,
		EndDate:        upd.EndDate,
		Location:       upd.Location,
		IsVerified:     upd.IsVerified,
		CreatedBy:      upd.CreatedBy.String(),
		CreatedAt:      upd.CreatedAt,
		UpdatedAt:      upd.UpdatedAt,
	}
	if upd.PropertyID != nil {
		propertyID := upd.PropertyID.String()
		resp.PropertyID = &propertyID
	}
	return resp
}
