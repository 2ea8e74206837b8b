package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/places/api/internal/database"
	"github.com/forgo/places/api/internal/model"
	"github.com/google/uuid"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user with an empty places list
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	id := uuid.New().String()
	ts := now()

	query := `
		CREATE type::thing('user', $id) CONTENT {
			username: $username,
			email: $email,
			password: $password,
			image: $image,
			places: [],
			created_on: $now,
			updated_on: $now
		}
	`
	vars := map[string]interface{}{
		"id":       id,
		"username": user.Username,
		"email":    user.Email,
		"password": user.Hash,
		"image":    user.Image,
		"now":      ts,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return fmt.Errorf("%w: user already exists", database.ErrDuplicate)
		}
		return err
	}

	user.ID = id
	user.Places = []string{}
	user.CreatedOn = ts.Time
	user.UpdatedOn = ts.Time
	return nil
}

// List returns every user without the password field
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT * OMIT password FROM user ORDER BY created_on ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(result)
	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		if data, ok := row.(map[string]interface{}); ok {
			users = append(users, parseUser(data))
		}
	}
	return users, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::thing($tb, $id)`
	vars := map[string]interface{}{"tb": userTable, "id": id}
	return r.getOne(ctx, query, vars)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}
	return r.getOne(ctx, query, vars)
}

// GetByEmailAndUsername retrieves the user matching both email and username
func (r *UserRepository) GetByEmailAndUsername(ctx context.Context, email, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email AND username = $username LIMIT 1`
	vars := map[string]interface{}{"email": email, "username": username}
	return r.getOne(ctx, query, vars)
}

// Delete deletes a user. Places created by the user are left untouched.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::thing($tb, $id)`
	vars := map[string]interface{}{"tb": userTable, "id": id}
	return r.db.Execute(ctx, query, vars)
}

func (r *UserRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.User, error) {
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
	return parseUser(data), nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        recordKey(data["id"]),
		Username:  getString(data, "username"),
		Email:     getString(data, "email"),
		Hash:      getString(data, "password"),
		Image:     getString(data, "image"),
		Places:    getKeySlice(data, "places"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}
