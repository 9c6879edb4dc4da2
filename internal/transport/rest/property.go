package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/internal/service/property"
)

// propertyService defines the minimal interface needed by PropertyHandler.
type propertyService interface {
	Create(ctx context.Context, input property.CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	Update(ctx context.Context, id uuid.UUID, input property.UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Claim(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Verify(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

// PropertyHandler serves property REST endpoints.
type PropertyHandler struct {
	svc propertyService
	log *slog.Logger
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc propertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{svc: svc, log: logger.With("handler", "property")}
}

type createPropertyRequest struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	PropertyType string   `json:"propertyType"`
	YearBuilt    int      `json:"yearBuilt"`
	SquareFeet   int      `json:"squareFeet"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	LotSize      *float64 `json:"lotSize,omitempty"`
}

type updatePropertyRequest struct {
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zipCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PropertyType *string  `json:"propertyType"`
	YearBuilt    *int     `json:"yearBuilt"`
	SquareFeet   *int     `json:"squareFeet"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	LotSize      *float64 `json:"lotSize"`
}

type propertyResponse struct {
	ID               string     `json:"id"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	ZipCode          string     `json:"zipCode"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	PropertyType     string     `json:"propertyType"`
	YearBuilt        int        `json:"yearBuilt"`
	SquareFeet       int        `json:"squareFeet"`
	Bedrooms         int        `json:"bedrooms"`
	Bathrooms        float64    `json:"bathrooms"`
	LotSize          *float64   `json:"lotSize,omitempty"`
	OwnerID          *string    `json:"ownerId,omitempty"`
	IsVerified       bool       `json:"isVerified"`
	VerificationDate *time.Time `json:"verificationDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Create handles POST /api/properties.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), property.CreatePropertyInput{
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PropertyType: req.PropertyType,
		YearBuilt:    req.YearBuilt,
		SquareFeet:   req.SquareFeet,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		LotSize:      req.LotSize,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPropertyResponse(p))
}

// Get handles GET /api/properties/{id}.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(p))
}

// List handles GET /api/properties with city/propertyType filters.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.PropertyFilter{
		City:         queryString(r, "city"),
		PropertyType: queryString(r, "property_type"),
		Page:         parsePage(r),
	}
	if v := queryString(r, "owner_id"); v != nil {
		ownerID, err := uuid.Parse(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owner_id")
			return
		}
		filter.OwnerID = &ownerID
	}

	properties, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]propertyResponse, 0, len(properties))
	for i := range properties {
		resp = append(resp, toPropertyResponse(&properties[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/properties/{id} with merge-patch semantics.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, property.UpdatePropertyInput{
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PropertyType: req.PropertyType,
		YearBuilt:    req.YearBuilt,
		SquareFeet:   req.SquareFeet,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		LotSize:      req.LotSize,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(p))
}

// Delete handles DELETE /api/properties/{id}.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Claim handles POST /api/properties/{id}/claim.
func (h *PropertyHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.Claim(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(p))
}

// Verify handles PATCH /api/properties/{id}/verify.
func (h *PropertyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.Verify(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(p))
}

func toPropertyResponse(p *domain.Property) propertyResponse {
	resp := propertyResponse{
		ID:               p.ID.String(),
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		ZipCode:          p.ZipCode,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		PropertyType:     p.PropertyType,
		YearBuilt:        p.YearBuilt,
		SquareFeet:       p.SquareFeet,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		LotSize:          p.LotSize,
		IsVerified:       p.IsVerified,
		VerificationDate: p.VerificationDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.OwnerID != nil {
		owner := p.OwnerID.String()
		resp.OwnerID = &owner
	}
	return resp
}
