package http

import (
	"github.com/shopspring/decimal"

	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/pkg/request"
	"github.com/courtsidehq/courtside-backend/internal/resource"
)

// ListResourcesRequest defines query parameters for browsing resources.
// Vendor scope comes from the tenant middleware, not from the query string.
type ListResourcesRequest struct {
	request.ListParams
	Sport string `form:"sport"`
	City  string `form:"city"`
	Area  string `form:"area"`
}

// VendorTag is the embedded vendor reference in resource responses.
type VendorTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ResourceResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Sport      string          `json:"sport"`
	Format     string          `json:"format"`
	Vendor     VendorTag       `json:"vendor"`
	City       string          `json:"city"`
	Area       string          `json:"area"`
	MaxPlayers int             `json:"max_players"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Currency   string          `json:"currency"`
}

func NewResourceResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:         r.ID,
		Name:       r.Name,
		Sport:      r.Sport,
		Format:     r.Format,
		Vendor:     VendorTag{ID: r.VendorID, Name: r.VendorName},
		City:       r.City,
		Area:       r.Area,
		MaxPlayers: r.MaxPlayers,
		HourlyRate: r.HourlyRate,
		Currency:   r.Currency,
	}
}

// AvailabilityRequest defines query parameters for the per-resource
// availability view. Date is required by the host contract; a present but
// malformed date still gets a well-formed empty response.
type AvailabilityRequest struct {
	Date            string `form:"date" binding:"required"`
	DurationMinutes int    `form:"duration_minutes"`
}

// SlotResponse deliberately excludes price: pricing is not part of this
// endpoint's contract, only of the timeline's.
type SlotResponse struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type AvailabilityResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func NewAvailabilityResponse(slots []availability.Slot) AvailabilityResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			StartTime:   s.Interval.Start.String(),
			EndTime:     s.Interval.End.String(),
			IsAvailable: s.IsAvailable,
		}
	}
	return AvailabilityResponse{Slots: out}
}
