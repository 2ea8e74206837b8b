package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Centralized service layer errors.
// Handlers map these to HTTP statuses in handler.MapServiceError.

// ===== Place Errors =====
var (
	ErrPlaceNotFound         = errors.New("could not find a place for the provided place id")
	ErrPlacesNotFoundForUser = errors.New("could not find places for the provided user id")
)

// ===== User Errors =====
var (
	ErrUserNotFound       = errors.New("could not find user for the provided id")
	ErrUserExists         = errors.New("user exists already, please login instead")
	ErrInvalidCredentials = errors.New("could not identify user, credentials seem to be wrong")
)

// ErrStore wraps any failure of the underlying document store, including
// cancelled transactions. The wrapped cause is kept for logging.
var ErrStore = errors.New("store operation failed")

// storeError logs a store failure and wraps it with ErrStore.
func storeError(ctx context.Context, op string, err error) error {
	slog.ErrorContext(ctx, "store operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
