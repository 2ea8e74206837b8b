package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/places/api/internal/model"
)

// ============================================================================
// Mock Services
// ============================================================================

type mockPlaceService struct {
	listFunc       func(ctx context.Context) ([]*model.Place, error)
	getFunc        func(ctx context.Context, id string) (*model.Place, error)
	listByUserFunc func(ctx context.Context, userID string) ([]*model.Place, error)
	createFunc     func(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error)
	updateFunc     func(ctx context.Context, id string, req *model.UpdatePlaceRequest) (*model.Place, error)
	deleteFunc     func(ctx context.Context, id string) error
}

func (m *mockPlaceService) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlaceService) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlaceService) ListPlacesByUser(ctx context.Context, userID string) ([]*model.Place, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPlaceService) CreatePlace(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockPlaceService) UpdatePlace(ctx context.Context, id string, req *model.UpdatePlaceRequest) (*model.Place, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockUserService struct {
	listFunc   func(ctx context.Context) ([]*model.User, error)
	getFunc    func(ctx context.Context, id string) (*model.User, error)
	deleteFunc func(ctx context.Context, id string) error
	signupFunc func(ctx context.Context, req *model.SignupRequest) (*model.User, error)
	loginFunc  func(ctx context.Context, req *model.LoginRequest) (*model.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockUserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, nil
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(ctx context.Context) error { return m.err }

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRouter(places *mockPlaceService, users *mockUserService) http.Handler {
	if places == nil {
		places = &mockPlaceService{}
	}
	if users == nil {
		users = &mockUserService{}
	}
	return NewRouter(RouterConfig{
		Places:         NewPlaceHandler(places),
		Users:          NewUserHandler(users),
		Health:         NewHealthHandler(mockPinger{}),
		AllowedOrigins: []string{"*"},
	})
}

func newTestPlace() *model.Place {
	now := time.Now()
	return &model.Place{
		ID:          "p1",
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world!",
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    model.Location{Lat: 40.7484405, Lng: -73.9878584},
		Image:       model.DefaultPlaceImage,
		Creator:     "u1",
		CreatedOn:   now,
		UpdatedOn:   now,
	}
}

func newTestUser() *model.User {
	now := time.Now()
	return &model.User{
		ID:        "u1",
		Username:  "max",
		Email:     "max@example.com",
		Hash:      "$2a$12$secret-hash",
		Image:     model.DefaultUserImage,
		Places:    []string{"p1"},
		CreatedOn: now,
		UpdatedOn: now,
	}
}
