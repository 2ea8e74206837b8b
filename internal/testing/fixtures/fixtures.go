// Package fixtures provides test data factories for integration tests.
//
// Factories insert through the real repositories so the stored shape matches
// what the service writes.
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	place := f.CreatePlace(t, user)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/places/api/internal/database"
	"github.com/forgo/places/api/internal/model"
	"github.com/forgo/places/api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext password of fixture users
const DefaultPassword = "testpass123"

// Factory creates test entities in the database
type Factory struct {
	users  *repository.UserRepository
	places *repository.PlaceRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users:  repository.NewUserRepository(db),
		places: repository.NewPlaceRepository(db),
	}
}

func randomID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*model.User)) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: hash password: %v", err)
	}

	id := randomID()
	u := &model.User{
		Username: "user_" + id,
		Email:    fmt.Sprintf("user_%s@test.local", id),
		Hash:     string(hash),
		Image:    model.DefaultUserImage,
	}
	for _, fn := range opts {
		fn(u)
	}

	c, cancel := ctx()
	defer cancel()
	if err := f.users.Create(c, u); err != nil {
		t.Fatalf("fixtures: create user: %v", err)
	}
	return u
}

// CreatePlace creates a place owned by creator
func (f *Factory) CreatePlace(t *testing.T, creator *model.User, opts ...func(*model.Place)) *model.Place {
	t.Helper()

	p := &model.Place{
		Title:       "Place " + randomID(),
		Description: "A place created by fixtures",
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    model.Location{Lat: 40.7484405, Lng: -73.9878584},
		Image:       model.DefaultPlaceImage,
		Creator:     creator.ID,
	}
	for _, fn := range opts {
		fn(p)
	}

	c, cancel := ctx()
	defer cancel()
	if err := f.places.CreateForCreator(c, p); err != nil {
		t.Fatalf("fixtures: create place: %v", err)
	}
	creator.Places = append(creator.Places, p.ID)
	return p
}
