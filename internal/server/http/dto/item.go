package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest is the body of item create and update calls.
type ItemRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category"`
	Available   *bool            `json:"available"`
}

// ItemResponse represents a catalog entry.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Category    *string   `json:"category"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
