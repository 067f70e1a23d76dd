package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/resource"
	resHttp "github.com/courtsidehq/courtside-backend/internal/resource/http"
	"github.com/courtsidehq/courtside-backend/internal/tenant"
	"github.com/courtsidehq/courtside-backend/internal/timeline"
	tlHttp "github.com/courtsidehq/courtside-backend/internal/timeline/http"
)

// Config bundles what the router needs from the container.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	ResService      resource.Service
	TimelineService timeline.Service
	TenantResolver  tenant.Resolver
}

// NewRouter assembles middleware (logging, recovery, CORS, tenant scoping)
// and registers the public marketplace routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	resHandler := resHttp.NewHandler(cfg.ResService)
	tlHandler := tlHttp.NewHandler(cfg.TimelineService)

	// Every /v1 route is vendor-scoped by subdomain; the marketplace apex
	// sees everything.
	v1 := r.Group("/v1")
	v1.Use(tenant.Scoped(cfg.TenantResolver))
	{
		resHttp.RegisterRoutes(v1, resHandler)
		tlHttp.RegisterRoutes(v1, tlHandler)
	}

	return r
}
