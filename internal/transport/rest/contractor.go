package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/internal/service/contractor"
)

// contractorService defines the minimal interface needed by ContractorHandler.
type contractorService interface {
	ListProjects(ctx context.Context, status *domain.RenovationStatus, page domain.Page) ([]domain.Renovation, error)
	SubmitProject(ctx context.Context, input contractor.SubmitProjectInput) (*domain.Renovation, error)
	UpdateProject(ctx context.Context, id uuid.UUID, input contractor.UpdateProjectInput) (*domain.Renovation, error)
	CompleteProject(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
	ListAssignments(ctx context.Context, status *domain.AssignmentStatus, page domain.Page) ([]domain.ContractorAssignment, error)
	AdvanceAssignment(ctx context.Context, id uuid.UUID, next domain.AssignmentStatus) (*domain.ContractorAssignment, error)
}

// ContractorHandler serves the contractor workspace REST endpoints. Every
// route is scoped to the authenticated contractor.
type ContractorHandler struct {
	svc contractorService
	log *slog.Logger
}

// NewContractorHandler creates a ContractorHandler.
func NewContractorHandler(svc contractorService, logger *slog.Logger) *ContractorHandler {
	return &ContractorHandler{svc: svc, log: logger.With("handler", "contractor")}
}

type submitProjectRequest struct {
	PropertyID     string         `json:"propertyId"`
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	RenovationType string         `json:"renovationType"`
	StartDate      time.Time      `json:"startDate"`
	Cost           float64        `json:"cost"`
	Materials      map[string]any `json:"materials,omitempty"`
	Blueprints     []string       `json:"blueprints,omitempty"`
	Photos         []string       `json:"photos,omitempty"`
}

type updateProjectRequest struct {
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	RenovationType *string        `json:"renovationType"`
	Cost           *float64       `json:"cost"`
	Materials      map[string]any `json:"materials"`
	Blueprints     []string       `json:"blueprints"`
	Photos         []string       `json:"photos"`
}

type advanceAssignmentRequest struct {
	Status string `json:"status"`
}

type renovationResponse struct {
	ID             string         `json:"id"`
	PropertyID     string         `json:"propertyId"`
	ContractorID   string         `json:"contractorId"`
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	RenovationType string         `json:"renovationType"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Cost           float64        `json:"cost"`
	Materials      map[string]any `json:"materials,omitempty"`
	Blueprints     []string       `json:"blueprints,omitempty"`
	Photos         []string       `json:"photos,omitempty"`
	Status         string         `json:"status"`
	IsVerified     bool           `json:"isVerified"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type assignmentResponse struct {
	ID             string     `json:"id"`
	ContractorID   string     `json:"contractorId"`
	PropertyID     string     `json:"propertyId"`
	AssignmentType string     `json:"assignmentType"`
	Status         string     `json:"status"`
	AssignedDate   time.Time  `json:"assignedDate"`
	CompletedDate  *time.Time `json:"completedDate,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ListProjects handles GET /api/contractor/projects.
func (h *ContractorHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var status *domain.RenovationStatus
	if v := queryString(r, "status"); v != nil {
		st := domain.RenovationStatus(*v)
		if !st.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		status = &st
	}

	projects, err := h.svc.ListProjects(r.Context(), status, parsePage(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]renovationResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, toRenovationResponse(&projects[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SubmitProject handles POST /api/contractor/projects.
func (h *ContractorHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	var req submitProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid propertyId")
		return
	}

	ren, err := h.svc.SubmitProject(r.Context(), contractor.SubmitProjectInput{
		PropertyID:     propertyID,
		Title:          req.Title,
		Description:    req.Description,
		RenovationType: req.RenovationType,
		StartDate:      req.StartDate,
		Cost:           req.Cost,
		Materials:      req.Materials,
		Blueprints:     req.Blueprints,
		Photos:         req.Photos,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRenovationResponse(ren))
}

// UpdateProject handles PUT /api/contractor/projects/{id} with merge-patch
// semantics.
func (h *ContractorHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ren, err := h.svc.UpdateProject(r.Context(), id, contractor.UpdateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		RenovationType: req.RenovationType,
		Cost:           req.Cost,
		Materials:      req.Materials,
		Blueprints:     req.Blueprints,
		Photos:         req.Photos,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRenovationResponse(ren))
}

// CompleteProject handles PATCH /api/contractor/projects/{id}/complete.
func (h *ContractorHandler) CompleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ren, err := h.svc.CompleteProject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRenovationResponse(ren))
}

// ListAssignments handles GET /api/contractor/assignments.
func (h *ContractorHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	var status *domain.AssignmentStatus
	if v := queryString(r, "status"); v != nil {
		st := domain.AssignmentStatus(*v)
		if !st.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		status = &st
	}

	assignments, err := h.svc.ListAssignments(r.Context(), status, parsePage(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]assignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, toAssignmentResponse(&assignments[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AdvanceAssignment handles PATCH /api/contractor/assignments/{id}/status.
func (h *ContractorHandler) AdvanceAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req advanceAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	asg, err := h.svc.AdvanceAssignment(r.Context(), id, domain.AssignmentStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentResponse(asg))
}

func toRenovationResponse(ren *domain.Renovation) renovationResponse {
	return renovationResponse{
		ID:             ren.ID.String(),
		PropertyID:     ren.PropertyID.String(),
		ContractorID:   ren.ContractorID.String(),
		Title:          ren.Title,
		Description:    ren.Description,
		RenovationType: ren.RenovationType,
		StartDate:      ren.StartDate,
		EndDate:        ren.EndDate,
		Cost:           ren.Cost,
		Materials:      ren.Materials,
		Blueprints:     ren.Blueprints,
		Photos:         ren.Photos,
		Status:         ren.Status.String(),
		IsVerified:     ren.IsVerified,
		CreatedAt:      ren.CreatedAt,
		UpdatedAt:      ren.UpdatedAt,
	}
}

func toAssignmentResponse(asg *domain.ContractorAssignment) assignmentResponse {
	return assignmentResponse{
		ID:             asg.ID.String(),
		ContractorID:   asg.ContractorID.String(),
		PropertyID:     asg.PropertyID.String(),
		AssignmentType: asg.AssignmentType,
		Status:         asg.Status.String(),
		AssignedDate:   asg.AssignedDate,
		CompletedDate:  asg.CompletedDate,
		Notes:          asg.Notes,
		CreatedAt:      asg.CreatedAt,
		UpdatedAt:      asg.UpdatedAt,
	}
}
