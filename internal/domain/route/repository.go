package route

import (
	"context"

	"github.com/google/uuid"
)

// RouteRepository defines persistence operations for saved routes.
type RouteRepository interface {
	Save(ctx context.Context, route *Route) error
	Exists(ctx context.Context, userID, originAddress, destinationAddress string) (bool, error)
	FindByUserID(ctx context.Context, userID string, limit int) ([]*Route, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, userID string) error
}
