// Package uuid wraps google/uuid so that IDs can be bound from URI and query
// parameters by gin.
package uuid

import (
	"fmt"

	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that implements gin's binding.BindUnmarshaler.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses s into a UUID. The empty string is an error.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("'%s' is not a valid UUID: %w", s, err)
	}

	return UUID{parsed}, nil
}

// UnmarshalParam parses a URI or query parameter. An empty parameter
// is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
