package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/routemark/service-routes/internal/domain"
	routeDomain "github.com/routemark/service-routes/internal/domain/route"
	"github.com/routemark/service-routes/internal/events"
)

// maxListResults caps the number of routes returned per list request.
const maxListResults = 50

const eventSource = "service-routes"

// SaveRouteRequest holds the data needed to save a route. Origin and
// destination accept both the bare-string and the object JSON shape.
type SaveRouteRequest struct {
	UserID      string               `json:"userId"`
	Origin      routeDomain.Endpoint `json:"origin"`
	Destination routeDomain.Endpoint `json:"destination"`
}

// RouteDTO is the API response representation of a saved route.
type RouteDTO struct {
	ID          uuid.UUID            `json:"id"`
	UserID      string               `json:"userId"`
	Origin      routeDomain.Endpoint `json:"origin"`
	Destination routeDomain.Endpoint `json:"destination"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// RouteService implements use cases for saved route management.
type RouteService struct {
	repo     routeDomain.RouteRepository
	producer *events.Producer
	logger   *zap.Logger
}

// NewRouteService creates a new RouteService. producer may be nil, which
// disables event publishing.
func NewRouteService(repo routeDomain.RouteRepository, producer *events.Producer, logger *zap.Logger) *RouteService {
	return &RouteService{repo: repo, producer: producer, logger: logger}
}

// SaveRoute persists a new route for the given user. Saving the same
// (user, origin, destination) triple twice is a conflict: the pre-write
// existence check catches the common case and the unique index in the store
// catches concurrent duplicates.
func (s *RouteService) SaveRoute(ctx context.Context, req SaveRouteRequest) (*RouteDTO, error) {
	rt, err := routeDomain.NewRoute(req.UserID, req.Origin, req.Destination)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	exists, err := s.repo.Exists(ctx, rt.UserID(), rt.Origin().Address, rt.Destination().Address)
	if err != nil {
		s.logger.Error("failed to check for existing route", zap.Error(err))
		return nil, fmt.Errorf("failed to check for existing route: %w", err)
	}
	if exists {
		return nil, domain.NewConflictError("route already saved")
	}

	if err := s.repo.Save(ctx, rt); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("failed to save route", zap.Error(err))
		return nil, fmt.Errorf("failed to save route: %w", err)
	}

	s.logger.Info("route saved",
		zap.String("route_id", rt.ID().String()),
		zap.String("user_id", rt.UserID()),
	)
	s.publishRouteSaved(ctx, rt)

	result := toRouteDTO(rt)
	return &result, nil
}

// ListRoutes returns the user's saved routes, newest first, capped at
// maxListResults.
func (s *RouteService) ListRoutes(ctx context.Context, userID string) ([]RouteDTO, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.NewValidationError("userId query parameter is required")
	}

	routes, err := s.repo.FindByUserID(ctx, userID, maxListResults)
	if err != nil {
		s.logger.Error("failed to list routes", zap.Error(err))
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	dtos := make([]RouteDTO, len(routes))
	for i, rt := range routes {
		dtos[i] = toRouteDTO(rt)
	}
	return dtos, nil
}

// DeleteRoute removes a route, but only when both id and owning user match.
func (s *RouteService) DeleteRoute(ctx context.Context, id uuid.UUID, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.NewValidationError("userId query parameter is required")
	}

	if err := s.repo.DeleteOwned(ctx, id, userID); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return err
		}
		s.logger.Error("failed to delete route", zap.Error(err))
		return fmt.Errorf("failed to delete route: %w", err)
	}

	s.logger.Info("route deleted",
		zap.String("route_id", id.String()),
		zap.String("user_id", userID),
	)
	s.publishRouteDeleted(ctx, id, userID)
	return nil
}

func (s *RouteService) publishRouteSaved(ctx context.Context, rt *routeDomain.Route) {
	evt := events.RouteSavedEvent{
		RouteID:            rt.ID(),
		UserID:             rt.UserID(),
		OriginAddress:      rt.Origin().Address,
		DestinationAddress: rt.Destination().Address,
		OccurredAt:         time.Now().UTC(),
	}
	s.publish(ctx, events.RouteSaved, evt)
}

func (s *RouteService) publishRouteDeleted(ctx context.Context, id uuid.UUID, userID string) {
	evt := events.RouteDeletedEvent{
		RouteID:    id,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	s.publish(ctx, events.RouteDeleted, evt)
}

// publish is fire-and-forget: event failures never fail the request.
func (s *RouteService) publish(ctx context.Context, eventType string, data interface{}) {
	ce, err := events.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to build event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicRouteEvents, ce); err != nil {
		s.logger.Error("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}

func toRouteDTO(rt *routeDomain.Route) RouteDTO {
	return RouteDTO{
		ID:          rt.ID(),
		UserID:      rt.UserID(),
		Origin:      rt.Origin(),
		Destination: rt.Destination(),
		CreatedAt:   rt.CreatedAt(),
		UpdatedAt:   rt.UpdatedAt(),
	}
}
