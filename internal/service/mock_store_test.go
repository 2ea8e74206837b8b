package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgo/places/api/internal/database"
	"github.com/forgo/places/api/internal/model"
)

// memStore is an in-memory document store shared by the place and user
// repository mocks. Multi-document writes apply all-or-nothing.
type memStore struct {
	users  map[string]*model.User
	places map[string]*model.Place
	seq    int

	getErr    error
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	txErr     error
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[string]*model.User),
		places: make(map[string]*model.Place),
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *memStore) addUser(u *model.User) *model.User {
	if u.ID == "" {
		u.ID = s.nextID("u")
	}
	if u.Places == nil {
		u.Places = []string{}
	}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addPlace(p *model.Place) *model.Place {
	if p.ID == "" {
		p.ID = s.nextID("p")
	}
	s.places[p.ID] = p
	if u, ok := s.users[p.Creator]; ok {
		u.Places = append(u.Places, p.ID)
	}
	return p
}

func copyUser(u *model.User) *model.User {
	c := *u
	c.Places = append([]string{}, u.Places...)
	return &c
}

func copyPlace(p *model.Place) *model.Place {
	c := *p
	return &c
}

type mockPlaceRepo struct{ s *memStore }

func (m *mockPlaceRepo) List(ctx context.Context) ([]*model.Place, error) {
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	var out []*model.Place
	for _, p := range m.s.places {
		out = append(out, copyPlace(p))
	}
	return out, nil
}

func (m *mockPlaceRepo) GetByID(ctx context.Context, id string) (*model.Place, error) {
	if m.s.getErr != nil {
		return nil, m.s.getErr
	}
	p, ok := m.s.places[id]
	if !ok {
		return nil, nil
	}
	return copyPlace(p), nil
}

func (m *mockPlaceRepo) ListByCreator(ctx context.Context, userID string) ([]*model.Place, error) {
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	var out []*model.Place
	for _, p := range m.s.places {
		if p.Creator == userID {
			out = append(out, copyPlace(p))
		}
	}
	return out, nil
}

func (m *mockPlaceRepo) CreateForCreator(ctx context.Context, place *model.Place) error {
	if m.s.txErr != nil {
		return fmt.Errorf("%w: %w", database.ErrQuery, m.s.txErr)
	}
	u, ok := m.s.users[place.Creator]
	if !ok {
		return fmt.Errorf("%w: creator does not exist", database.ErrQuery)
	}
	place.ID = m.s.nextID("p")
	place.CreatedOn = time.Now()
	place.UpdatedOn = place.CreatedOn
	m.s.places[place.ID] = copyPlace(place)
	u.Places = append(u.Places, place.ID)
	return nil
}

func (m *mockPlaceRepo) UpdateDetails(ctx context.Context, place *model.Place) error {
	if m.s.updateErr != nil {
		return m.s.updateErr
	}
	stored, ok := m.s.places[place.ID]
	if !ok {
		return database.ErrNotFound
	}
	stored.Title = place.Title
	stored.Description = place.Description
	stored.UpdatedOn = time.Now()
	return nil
}

func (m *mockPlaceRepo) DeleteForCreator(ctx context.Context, place *model.Place) error {
	if m.s.txErr != nil {
		return fmt.Errorf("%w: %w", database.ErrQuery, m.s.txErr)
	}
	delete(m.s.places, place.ID)
	if u, ok := m.s.users[place.Creator]; ok {
		kept := u.Places[:0]
		for _, id := range u.Places {
			if id != place.ID {
				kept = append(kept, id)
			}
		}
		u.Places = kept
	}
	return nil
}

type mockUserRepo struct{ s *memStore }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.s.createErr != nil {
		return m.s.createErr
	}
	for _, u := range m.s.users {
		if u.Email == user.Email && u.Username == user.Username {
			return fmt.Errorf("%w: user already exists", database.ErrDuplicate)
		}
	}
	user.ID = m.s.nextID("u")
	user.CreatedOn = time.Now()
	user.UpdatedOn = user.CreatedOn
	m.s.users[user.ID] = copyUser(user)
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	var out []*model.User
	for _, u := range m.s.users {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.s.getErr != nil {
		return nil, m.s.getErr
	}
	u, ok := m.s.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.s.getErr != nil {
		return nil, m.s.getErr
	}
	for _, u := range m.s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmailAndUsername(ctx context.Context, email, username string) (*model.User, error) {
	if m.s.getErr != nil {
		return nil, m.s.getErr
	}
	for _, u := range m.s.users {
		if u.Email == email && u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.s.deleteErr != nil {
		return m.s.deleteErr
	}
	delete(m.s.users, id)
	return nil
}

// plainHasher avoids bcrypt cost in tests that do not exercise hashing.
type plainHasher struct{ err error }

func (h plainHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h plainHasher) Compare(hash, password string) bool {
	return hash == "hashed:"+password
}

var errBoom = errors.New("boom")

func newTestServices() (*memStore, *PlaceService, *UserService) {
	s := newMemStore()
	users := &mockUserRepo{s: s}
	places := NewPlaceService(PlaceServiceConfig{
		PlaceRepo: &mockPlaceRepo{s: s},
		Users:     users,
	})
	accounts := NewUserService(UserServiceConfig{
		UserRepo: users,
		Hasher:   plainHasher{},
	})
	return s, places, accounts
}
