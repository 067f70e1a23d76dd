package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/api"
	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/booking"
	"github.com/courtsidehq/courtside-backend/internal/resource"
	"github.com/courtsidehq/courtside-backend/internal/tenant"
	"github.com/courtsidehq/courtside-backend/internal/timeline"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	DBPool          *pgxpool.Pool
	BaseDomain      string
	TimelineWorkers int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Availability engine (pure, shared by both views)
	engine := availability.NewEngine()

	// Booking module (read-only projection of existing bookings)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Resource module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo, bookingRepo, engine)

	// Timeline module
	timelineService := timeline.NewService(resRepo, bookingRepo, engine, cfg.TimelineWorkers)

	// Tenant resolution
	resolver := tenant.NewPgxResolver(cfg.DBPool, cfg.BaseDomain)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		ResService:      resService,
		TimelineService: timelineService,
		TenantResolver:  resolver,
	})

	return &Container{Router: router}
}
