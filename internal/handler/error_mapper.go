package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/places/api/internal/model"
	"github.com/forgo/places/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Store failures and anything unrecognized become a generic 500 so raw store
// messages never reach clients.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError("Could not identify user, credentials seem to be wrong.")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrPlaceNotFound):
		return model.NewNotFoundError("Could not find a place for the provided id.")
	case errors.Is(err, service.ErrPlacesNotFoundForUser):
		return model.NewNotFoundError("Could not find places for the provided user id.")
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("Could not find user for the provided id.")

	// ===== Conflict Errors → 422 =====
	case errors.Is(err, service.ErrUserExists):
		return model.NewConflictError("User exists already, please login instead.")

	// ===== Store Errors → 500 =====
	case errors.Is(err, service.ErrStore):
		return model.NewInternalError("Something went wrong, please try again later.")
	}

	return model.NewInternalError("")
}

// writeServiceError maps err and writes it. Store errors are logged by the
// services; anything else reaching a 500 is logged here.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	pd := MapServiceError(err)
	if pd.Status >= http.StatusInternalServerError && !errors.Is(err, service.ErrStore) {
		slog.ErrorContext(r.Context(), "unexpected service error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	WriteError(w, pd)
}
