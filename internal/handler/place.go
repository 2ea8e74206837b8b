package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forgo/places/api/internal/model"
)

// PlaceService is the place API consumed by PlaceHandler
type PlaceService interface {
	ListPlaces(ctx context.Context) ([]*model.Place, error)
	GetPlace(ctx context.Context, id string) (*model.Place, error)
	ListPlacesByUser(ctx context.Context, userID string) ([]*model.Place, error)
	CreatePlace(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error)
	UpdatePlace(ctx context.Context, id string, req *model.UpdatePlaceRequest) (*model.Place, error)
	DeletePlace(ctx context.Context, id string) error
}

// PlaceHandler handles place HTTP requests
type PlaceHandler struct {
	svc PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(svc PlaceService) *PlaceHandler {
	return &PlaceHandler{svc: svc}
}

type placesResponse struct {
	Places []*model.Place `json:"places"`
}

type placeResponse struct {
	Place *model.Place `json:"place"`
}

// List handles GET /api/places
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.ListPlaces(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if places == nil {
		places = []*model.Place{}
	}
	WriteJSON(w, http.StatusOK, placesResponse{Places: places})
}

// Get handles GET /api/places/{pid}
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	place, err := h.svc.GetPlace(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, placeResponse{Place: place})
}

// ListByUser handles GET /api/places/user/{uid}
func (h *PlaceHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.ListPlacesByUser(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, placesResponse{Places: places})
}

// Create handles POST /api/places
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePlaceRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	place, err := h.svc.CreatePlace(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, placeResponse{Place: place})
}

// Update handles PATCH /api/places/{pid}
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdatePlaceRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	place, err := h.svc.UpdatePlace(r.Context(), chi.URLParam(r, "pid"), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, placeResponse{Place: place})
}

// Delete handles DELETE /api/places/{pid}
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePlace(r.Context(), chi.URLParam(r, "pid")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteMessage(w, http.StatusOK, "Successfully Deleted place.")
}
