package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/resources")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/:id/availability", h.Availability)
	}
}
