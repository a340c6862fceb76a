package events

import (
	"time"

	"github.com/google/uuid"
)

// Topic and event types for the route event stream.
const (
	TopicRouteEvents = "route.events"

	RouteSaved   = "route.saved"
	RouteDeleted = "route.deleted"
)

// RouteSavedEvent is published after a route is persisted.
type RouteSavedEvent struct {
	RouteID            uuid.UUID `json:"route_id"`
	UserID             string    `json:"user_id"`
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// RouteDeletedEvent is published after a route is removed by its owner.
type RouteDeletedEvent struct {
	RouteID    uuid.UUID `json:"route_id"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
