package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
)

// ParseID checks that id is a well-formed identifier and returns its canonical form.
func ParseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domainErrors.ErrInvalidReference, id)
	}
	return parsed.String(), nil
}

// NewID generates a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// stores keep millisecond precision at best
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}
