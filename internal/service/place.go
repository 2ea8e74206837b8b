package service

import (
	"context"

	"github.com/forgo/places/api/internal/model"
)

// PlaceRepository defines the interface for place storage
type PlaceRepository interface {
	List(ctx context.Context) ([]*model.Place, error)
	GetByID(ctx context.Context, id string) (*model.Place, error)
	ListByCreator(ctx context.Context, userID string) ([]*model.Place, error)
	CreateForCreator(ctx context.Context, place *model.Place) error
	UpdateDetails(ctx context.Context, place *model.Place) error
	DeleteForCreator(ctx context.Context, place *model.Place) error
}

// UserFetcher resolves users by ID
type UserFetcher interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// PlaceService handles place operations
type PlaceService struct {
	placeRepo PlaceRepository
	users     UserFetcher
}

// PlaceServiceConfig holds configuration for the place service
type PlaceServiceConfig struct {
	PlaceRepo PlaceRepository
	Users     UserFetcher
}

// NewPlaceService creates a new place service
func NewPlaceService(cfg PlaceServiceConfig) *PlaceService {
	return &PlaceService{
		placeRepo: cfg.PlaceRepo,
		users:     cfg.Users,
	}
}

// ListPlaces returns every place
func (s *PlaceService) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	places, err := s.placeRepo.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list places", err)
	}
	return places, nil
}

// GetPlace retrieves a place by ID
func (s *PlaceService) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, "get place", err)
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return place, nil
}

// ListPlacesByUser returns the places created by userID. An empty result is
// reported as ErrPlacesNotFoundForUser whether or not the user exists.
func (s *PlaceService) ListPlacesByUser(ctx context.Context, userID string) ([]*model.Place, error) {
	places, err := s.placeRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, storeError(ctx, "list places by user", err)
	}
	if len(places) == 0 {
		return nil, ErrPlacesNotFoundForUser
	}
	return places, nil
}

// CreatePlace creates a place for an existing creator and appends it to the
// creator's places in the same transaction
func (s *PlaceService) CreatePlace(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error) {
	creator, err := s.users.GetByID(ctx, req.Creator)
	if err != nil {
		return nil, storeError(ctx, "find creator", err)
	}
	if creator == nil {
		return nil, ErrUserNotFound
	}

	image := req.Image
	if image == "" {
		image = model.DefaultPlaceImage
	}

	place := &model.Place{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Image:       image,
		Creator:     creator.ID,
	}
	if req.Coordinates != nil {
		place.Location = *req.Coordinates
	}

	if err := s.placeRepo.CreateForCreator(ctx, place); err != nil {
		return nil, storeError(ctx, "create place", err)
	}
	return place, nil
}

// UpdatePlace changes the title and description of a place
func (s *PlaceService) UpdatePlace(ctx context.Context, id string, req *model.UpdatePlaceRequest) (*model.Place, error) {
	place, err := s.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}

	place.Title = req.Title
	place.Description = req.Description

	if err := s.placeRepo.UpdateDetails(ctx, place); err != nil {
		return nil, storeError(ctx, "update place", err)
	}
	return place, nil
}

// DeletePlace removes a place and its entry in the creator's places
func (s *PlaceService) DeletePlace(ctx context.Context, id string) error {
	place, err := s.GetPlace(ctx, id)
	if err != nil {
		return err
	}

	if err := s.placeRepo.DeleteForCreator(ctx, place); err != nil {
		return storeError(ctx, "delete place", err)
	}
	return nil
}
