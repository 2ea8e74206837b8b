package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/places/api/internal/model"
	"github.com/forgo/places/api/internal/service"
	"github.com/forgo/places/api/internal/testing/helpers"
)

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Empire State Building",
		"description": "One of the most famous sky scrapers in the world!",
		"address":     "20 W 34th St, New York, NY 10001",
		"coordinates": map[string]float64{"lat": 40.7484405, "lng": -73.9878584},
		"creator":     "u1",
	}
}

func TestListPlaces_ReturnsEnvelope(t *testing.T) {
	svc := &mockPlaceService{
		listFunc: func(ctx context.Context) ([]*model.Place, error) {
			return []*model.Place{newTestPlace()}, nil
		},
	}

	rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, http.MethodGet, "/api/places", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Places []model.Place `json:"places"`
	}
	helpers.DecodeJSON(t, rr, &body)
	require.Len(t, body.Places, 1)
	assert.Equal(t, "p1", body.Places[0].ID)
	assert.Equal(t, "u1", body.Places[0].Creator)
}

func TestListPlaces_EmptyIsArray(t *testing.T) {
	rr := helpers.Serve(newTestRouter(nil, nil), helpers.JSONRequest(t, http.MethodGet, "/api/places", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"places":[]}`, rr.Body.String())
}

func TestGetPlace_Found(t *testing.T) {
	var gotID string
	svc := &mockPlaceService{
		getFunc: func(ctx context.Context, id string) (*model.Place, error) {
			gotID = id
			return newTestPlace(), nil
		},
	}

	rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, http.MethodGet, "/api/places/p1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "p1", gotID)

	var body struct {
		Place model.Place `json:"place"`
	}
	helpers.DecodeJSON(t, rr, &body)
	assert.Equal(t, "Empire State Building", body.Place.Title)
}

func TestGetPlace_NotFound(t *testing.T) {
	svc := &mockPlaceService{
		getFunc: func(ctx context.Context, id string) (*model.Place, error) {
			return nil, service.ErrPlaceNotFound
		},
	}

	rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, http.MethodGet, "/api/places/nope", nil))
	pd := helpers.RequireProblem(t, rr, http.StatusNotFound)
	assert.Equal(t, model.ErrCodeNotFound, pd.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestListPlacesByUser(t *testing.T) {
	var gotUser string
	svc := &mockPlaceService{
		listByUserFunc: func(ctx context.Context, userID string) ([]*model.Place, error) {
			gotUser = userID
			if userID == "u1" {
				return []*model.Place{newTestPlace()}, nil
			}
			return nil, service.ErrPlacesNotFoundForUser
		},
	}
	router := newTestRouter(svc, nil)

	rr := helpers.Serve(router, helpers.JSONRequest(t, http.MethodGet, "/api/places/user/u1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", gotUser)

	rr = helpers.Serve(router, helpers.JSONRequest(t, http.MethodGet, "/api/places/user/u2", nil))
	helpers.RequireProblem(t, rr, http.StatusNotFound)
}

func TestCreatePlace_ValidInput_ReturnsCreated(t *testing.T) {
	var got *model.CreatePlaceRequest
	svc := &mockPlaceService{
		createFunc: func(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error) {
			got = req
			return newTestPlace(), nil
		},
	}

	rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, http.MethodPost, "/api/places", validCreateBody()))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	require.NotNil(t, got)
	assert.Equal(t, "u1", got.Creator)
	require.NotNil(t, got.Coordinates)
	assert.Equal(t, -73.9878584, got.Coordinates.Lng)

	var body struct {
		Place model.Place `json:"place"`
	}
	helpers.DecodeJSON(t, rr, &body)
	assert.Equal(t, "p1", body.Place.ID)
}

func TestCreatePlace_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(b map[string]interface{})
		field string
	}{
		{"missing title", func(b map[string]interface{}) { delete(b, "title") }, "title"},
		{"short description", func(b map[string]interface{}) { b["description"] = "abcd" }, "description"},
		{"missing address", func(b map[string]interface{}) { b["address"] = "" }, "address"},
		{"missing coordinates", func(b map[string]interface{}) { delete(b, "coordinates") }, "coordinates"},
		{"missing creator", func(b map[string]interface{}) { delete(b, "creator") }, "creator"},
		{"bad image", func(b map[string]interface{}) { b["image"] = "not a url" }, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockPlaceService{
				createFunc: func(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error) {
					called = true
					return newTestPlace(), nil
				},
			}
			body := validCreateBody()
			tt.edit(body)

			rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, http.MethodPost, "/api/places", body))
			pd := helpers.RequireProblem(t, rr, http.StatusUnprocessableEntity)
			assert.False(t, called, "service must not be called on invalid input")

			fields := make([]string, 0, len(pd.Errors))
			for _, fe := range pd.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestCreatePlace_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	rr := helpers.Serve(newTestRouter(nil, nil), helpers.JSONRequest(t, http.MethodPost, "/api/places", `{"title":`))
	pd := helpers.RequireProblem(t, rr, http.StatusBadRequest)
	assert.Equal(t, model.ErrCodeInvalidInput, pd.Code)
}

func TestCreatePlace_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"creator missing", service.ErrUserNotFound, http.StatusNotFound},
		{"store failure", fmt.Errorf("%w: create place: connection reset", service.ErrStore), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPlaceService{
				createFunc: func(ctx context.Context, req *model.CreatePlaceRequest) (*model.Place, error) {
					return nil, tt.err
				},
			}
			rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, http.MethodPost, "/api/places", validCreateBody()))
			pd := helpers.RequireProblem(t, rr, tt.status)
			assert.NotContains(t, pd.Detail, "connection reset")
		})
	}
}

func TestUpdatePlace_PatchAndPut(t *testing.T) {
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			var gotID string
			var got *model.UpdatePlaceRequest
			svc := &mockPlaceService{
				updateFunc: func(ctx context.Context, id string, req *model.UpdatePlaceRequest) (*model.Place, error) {
					gotID, got = id, req
					p := newTestPlace()
					p.Title, p.Description = req.Title, req.Description
					return p, nil
				},
			}

			body := map[string]string{"title": "New title", "description": "New description"}
			rr := helpers.Serve(newTestRouter(svc, nil), helpers.JSONRequest(t, method, "/api/places/p1", body))
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, "p1", gotID)
			assert.Equal(t, "New title", got.Title)

			var resp struct {
				Place model.Place `json:"place"`
			}
			helpers.DecodeJSON(t, rr, &resp)
			assert.Equal(t, "New description", resp.Place.Description)
		})
	}
}

func TestUpdatePlace_ValidationAndNotFound(t *testing.T) {
	svc := &mockPlaceService{
		updateFunc: func(ctx context.Context, id string, req *model.UpdatePlaceRequest) (*model.Place, error) {
			return nil, service.ErrPlaceNotFound
		},
	}
	router := newTestRouter(svc, nil)

	rr := helpers.Serve(router, helpers.JSONRequest(t, http.MethodPatch, "/api/places/p1",
		map[string]string{"title": "", "description": "long enough"}))
	helpers.RequireProblem(t, rr, http.StatusUnprocessableEntity)

	rr = helpers.Serve(router, helpers.JSONRequest(t, http.MethodPatch, "/api/places/p9",
		map[string]string{"title": "Title", "description": "long enough"}))
	helpers.RequireProblem(t, rr, http.StatusNotFound)
}

func TestDeletePlace(t *testing.T) {
	var gotID string
	svc := &mockPlaceService{
		deleteFunc: func(ctx context.Context, id string) error {
			gotID = id
			if id != "p1" {
				return service.ErrPlaceNotFound
			}
			return nil
		},
	}
	router := newTestRouter(svc, nil)

	rr := helpers.Serve(router, helpers.JSONRequest(t, http.MethodDelete, "/api/places/p1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "p1", gotID)
	assert.JSONEq(t, `{"message":"Successfully Deleted place."}`, rr.Body.String())

	rr = helpers.Serve(router, helpers.JSONRequest(t, http.MethodDelete, "/api/places/p2", nil))
	helpers.RequireProblem(t, rr, http.StatusNotFound)
}
