package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/routemark/service-routes/internal/domain"
	routeDomain "github.com/routemark/service-routes/internal/domain/route"
)

// RouteModel is the GORM model for the routes table. The composite unique
// index backs the duplicate-route guarantee; the (user_id, created_at) index
// backs the list query. user_id is text: identifiers are client-held and not
// validated for format or length, so the column must not reject them.
type RouteModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID             string    `gorm:"type:text;not null;uniqueIndex:idx_routes_user_trip;index:idx_routes_user_created,priority:1"`
	OriginAddress      string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_routes_user_trip"`
	DestinationAddress string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_routes_user_trip"`
	CreatedAt          time.Time `gorm:"type:timestamptz;not null;default:now();index:idx_routes_user_created,priority:2,sort:desc"`
	UpdatedAt          time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (RouteModel) TableName() string { return "routes" }

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

func (r *GormRouteRepository) Save(ctx context.Context, route *routeDomain.Route) error {
	model := toRouteModel(route)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// The unique index closes the check-then-insert race: a concurrent
		// duplicate save loses here rather than inserting a second row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("route already saved")
		}
		return err
	}
	return nil
}

func (r *GormRouteRepository) Exists(ctx context.Context, userID, originAddress, destinationAddress string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RouteModel{}).
		Where("user_id = ? AND origin_address = ? AND destination_address = ?",
			userID, originAddress, destinationAddress).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRouteRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]*routeDomain.Route, error) {
	var models []RouteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	routes := make([]*routeDomain.Route, len(models))
	for i, m := range models {
		routes[i] = toRouteDomain(&m)
	}
	return routes, nil
}

func (r *GormRouteRepository) DeleteOwned(ctx context.Context, id uuid.UUID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&RouteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Route", id.String())
	}
	return nil
}

// --- Conversions ---

func toRouteModel(rt *routeDomain.Route) *RouteModel {
	return &RouteModel{
		ID:                 rt.ID(),
		UserID:             rt.UserID(),
		OriginAddress:      rt.Origin().Address,
		DestinationAddress: rt.Destination().Address,
		CreatedAt:          rt.CreatedAt(),
		UpdatedAt:          rt.UpdatedAt(),
	}
}

func toRouteDomain(m *RouteModel) *routeDomain.Route {
	return routeDomain.Reconstruct(
		m.ID,
		m.UserID,
		routeDomain.Endpoint{Address: m.OriginAddress},
		routeDomain.Endpoint{Address: m.DestinationAddress},
		m.CreatedAt, m.UpdatedAt,
	)
}
