package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/places/api/internal/database"
	"github.com/forgo/places/api/internal/model"
	"github.com/google/uuid"
)

// PlaceRepository handles place data access
type PlaceRepository struct {
	db database.Database
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db database.Database) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// List returns every place, oldest first
func (r *PlaceRepository) List(ctx context.Context) ([]*model.Place, error) {
	query := `SELECT * FROM place ORDER BY created_on ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	return parsePlaces(result), nil
}

// GetByID retrieves a place by ID
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	query := `SELECT * FROM type::thing($tb, $id)`
	vars := map[string]interface{}{"tb": placeTable, "id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return parsePlace(data), nil
}

// ListByCreator returns the places whose creator is userID, oldest first
func (r *PlaceRepository) ListByCreator(ctx context.Context, userID string) ([]*model.Place, error) {
	query := `SELECT * FROM place WHERE creator = type::thing($tb, $creator) ORDER BY created_on ASC`
	vars := map[string]interface{}{"tb": userTable, "creator": userID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return parsePlaces(result), nil
}

// CreateForCreator inserts the place and appends it to its creator's places
// list in one transaction. The place's ID and timestamps are set on success.
func (r *PlaceRepository) CreateForCreator(ctx context.Context, place *model.Place) error {
	id := uuid.New().String()
	ts := now()

	// The creator may disappear between the service's lookup and commit
	guardCreator := `IF !record::exists(type::thing('user', $creator)) { THROW "creator does not exist" }`
	guardVars := map[string]interface{}{"creator": place.Creator}

	createPlace := `
		CREATE type::thing('place', $id) CONTENT {
			title: $title,
			description: $description,
			address: $address,
			location: { lat: $lat, lng: $lng },
			image: $image,
			creator: type::thing('user', $creator),
			created_on: $now,
			updated_on: $now
		}
	`
	placeVars := map[string]interface{}{
		"id":          id,
		"title":       place.Title,
		"description": place.Description,
		"address":     place.Address,
		"lat":         place.Location.Lat,
		"lng":         place.Location.Lng,
		"image":       place.Image,
		"creator":     place.Creator,
		"now":         ts,
	}

	linkCreator := `UPDATE type::thing('user', $creator) SET places += type::thing('place', $id), updated_on = $now`
	linkVars := map[string]interface{}{
		"id":      id,
		"creator": place.Creator,
		"now":     ts,
	}

	err := inTransaction(ctx, r.db,
		statement{guardCreator, guardVars},
		statement{createPlace, placeVars},
		statement{linkCreator, linkVars},
	)
	if err != nil {
		return fmt.Errorf("create place transaction: %w", err)
	}

	place.ID = id
	place.CreatedOn = ts.Time
	place.UpdatedOn = ts.Time
	return nil
}

// UpdateDetails changes the title and description of a place. No other
// field is written.
func (r *PlaceRepository) UpdateDetails(ctx context.Context, place *model.Place) error {
	ts := now()
	query := `UPDATE type::thing('place', $id) SET title = $title, description = $description, updated_on = $now`
	vars := map[string]interface{}{
		"id":          place.ID,
		"title":       place.Title,
		"description": place.Description,
		"now":         ts,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return err
	}
	place.UpdatedOn = ts.Time
	return nil
}

// DeleteForCreator removes the place and pulls it from its creator's places
// list in one transaction.
func (r *PlaceRepository) DeleteForCreator(ctx context.Context, place *model.Place) error {
	deletePlace := `DELETE type::thing('place', $id)`
	deleteVars := map[string]interface{}{"id": place.ID}

	unlinkCreator := `UPDATE type::thing('user', $creator) SET places -= type::thing('place', $id), updated_on = $now`
	unlinkVars := map[string]interface{}{
		"id":      place.ID,
		"creator": place.Creator,
		"now":     now(),
	}

	err := inTransaction(ctx, r.db,
		statement{deletePlace, deleteVars},
		statement{unlinkCreator, unlinkVars},
	)
	if err != nil {
		return fmt.Errorf("delete place transaction: %w", err)
	}
	return nil
}

func parsePlaces(result []interface{}) []*model.Place {
	rows := extractQueryResults(result)
	places := make([]*model.Place, 0, len(rows))
	for _, row := range rows {
		if data, ok := row.(map[string]interface{}); ok {
			places = append(places, parsePlace(data))
		}
	}
	return places
}

func parsePlace(data map[string]interface{}) *model.Place {
	place := &model.Place{
		ID:          recordKey(data["id"]),
		Title:       getString(data, "title"),
		Description: getString(data, "description"),
		Address:     getString(data, "address"),
		Image:       getString(data, "image"),
		Creator:     recordKey(data["creator"]),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
	if loc := getMap(data, "location"); loc != nil {
		place.Location = model.Location{
			Lat: getFloat(loc, "lat"),
			Lng: getFloat(loc, "lng"),
		}
	}
	return place
}
