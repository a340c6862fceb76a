package route

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Route is the aggregate root for a saved origin/destination pair owned by an
// anonymous user identifier.
type Route struct {
	id          uuid.UUID
	userID      string
	origin      Endpoint
	destination Endpoint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRoute creates a new route with normalized, validated fields.
func NewRoute(userID string, origin, destination Endpoint) (*Route, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	origin = NewEndpoint(origin.Address)
	destination = NewEndpoint(destination.Address)
	if origin.IsZero() {
		return nil, fmt.Errorf("origin address is required")
	}
	if destination.IsZero() {
		return nil, fmt.Errorf("destination address is required")
	}

	now := time.Now().UTC()
	return &Route{
		id:          uuid.New(),
		userID:      userID,
		origin:      origin,
		destination: destination,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Route from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	userID string,
	origin, destination Endpoint,
	createdAt, updatedAt time.Time,
) *Route {
	return &Route{
		id:          id,
		userID:      userID,
		origin:      origin,
		destination: destination,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Route) ID() uuid.UUID         { return r.id }
func (r *Route) UserID() string        { return r.userID }
func (r *Route) Origin() Endpoint      { return r.origin }
func (r *Route) Destination() Endpoint { return r.destination }
func (r *Route) CreatedAt() time.Time  { return r.createdAt }
func (r *Route) UpdatedAt() time.Time  { return r.updatedAt }

// IsOwnedBy checks if the route belongs to the given user identifier.
func (r *Route) IsOwnedBy(userID string) bool {
	return r.userID == userID
}
