//go:build integration

package main_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/routemark/service-routes/internal/application"
	"github.com/routemark/service-routes/internal/handler"
	"github.com/routemark/service-routes/internal/repository"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB      *gorm.DB
	Cleanup func()
}

// routeStack holds the wired-up route service components.
type routeStack struct {
	Repo    *repository.GormRouteRepository
	Service *application.RouteService
	Router  *gin.Engine
}

// setupPostgres starts a PostgreSQL testcontainer and returns a connected GORM DB.
func setupPostgres(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_routes",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_routes sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping. TranslateError must be
	// on so unique violations surface as gorm.ErrDuplicatedKey, as in prod.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	// Enable uuid-ossp and auto-migrate the routes table.
	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(&repository.RouteModel{}))

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{DB: db, Cleanup: cleanup}
}

// setupRouteStack wires up the repository, service, and HTTP router.
func setupRouteStack(t *testing.T, db *gorm.DB, mapsKey string) *routeStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	repo := repository.NewGormRouteRepository(db)
	svc := application.NewRouteService(repo, nil, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewRouteHandler(svc).RegisterRoutes(router)
	handler.NewMetaHandler(application.NewIdentityService(), mapsKey).RegisterRoutes(router)

	return &routeStack{Repo: repo, Service: svc, Router: router}
}

// seedRouteAt inserts a route row with an explicit creation time.
func seedRouteAt(t *testing.T, db *gorm.DB, userID, origin, destination string, createdAt time.Time) {
	t.Helper()
	model := repository.RouteModel{
		UserID:             userID,
		OriginAddress:      origin,
		DestinationAddress: destination,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
	require.NoError(t, db.Create(&model).Error, "failed to seed route")
}

// countRoutes returns the number of persisted routes for a user.
func countRoutes(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&repository.RouteModel{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}
