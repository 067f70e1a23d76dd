package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
	"github.com/courtsidehq/courtside-backend/internal/resource"
	"github.com/courtsidehq/courtside-backend/internal/tenant"
	"github.com/courtsidehq/courtside-backend/internal/timeline"
)

type Handler struct {
	service timeline.Service
}

func NewHandler(service timeline.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	var req TimelineRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	filter := resource.Filter{
		Sport: req.Sport,
		City:  req.City,
		Area:  req.Area,
	}
	if vendor := tenant.VendorFromContext(c); vendor != nil {
		filter.VendorID = vendor.ID
	}

	result, err := h.service.GetTimeline(c.Request.Context(), filter, req.Date, req.DurationMinutes)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTimelineResponse(result))
}
