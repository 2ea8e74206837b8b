package model

import "time"

// DefaultPlaceImage is used when a place is created without an image.
const DefaultPlaceImage = "https://www.funfunnyfacts.com/images/large/empire-state-building-1.jpg"

// Location is a geographic coordinate pair. It is stored as given and never
// validated or indexed.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents a place shared by a user
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	Image       string    `json:"image"`
	Creator     string    `json:"creator"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// CreatePlaceRequest represents the create place request body
type CreatePlaceRequest struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description" validate:"required,min=5"`
	Coordinates *Location `json:"coordinates" validate:"required"`
	Address     string    `json:"address" validate:"required,notblank"`
	Creator     string    `json:"creator" validate:"required"`
	Image       string    `json:"image,omitempty" validate:"omitempty,url"`
}

// UpdatePlaceRequest represents the update place request body. Only title
// and description can change after creation.
type UpdatePlaceRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,min=5"`
}
