package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable good listed in the bakery catalog.
type MenuItem struct {
	ID          string
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Category    *string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemFilter narrows catalog listings. Nil fields are not applied.
type ItemFilter struct {
	Available *bool
}
