package http

import (
	"github.com/shopspring/decimal"

	"github.com/courtsidehq/courtside-backend/internal/timeline"
)

// TimelineRequest defines query parameters for the cross-resource timeline.
type TimelineRequest struct {
	Date            string `form:"date" binding:"required"`
	DurationMinutes int    `form:"duration_minutes"`
	Sport           string `form:"sport"`
	City            string `form:"city"`
	Area            string `form:"area"`
}

type ResourceTag struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sport  string `json:"sport"`
	Vendor string `json:"vendor"`
}

type TimelineSlotResponse struct {
	StartTime  string           `json:"start_time"`
	EndTime    string           `json:"end_time"`
	Resource   ResourceTag      `json:"resource"`
	Status     string           `json:"status"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Actions    []string         `json:"actions"`
}

type SummaryResponse struct {
	Available      int `json:"available"`
	OpenMatches    int `json:"open_matches"`
	PrivateMatches int `json:"private_matches"`
	Unavailable    int `json:"unavailable"`
}

type TimelineResponse struct {
	Slots   []TimelineSlotResponse `json:"slots"`
	Summary SummaryResponse        `json:"summary"`
}

func NewTimelineResponse(result *timeline.Result) TimelineResponse {
	slots := make([]TimelineSlotResponse, len(result.Slots))
	for i, e := range result.Slots {
		slots[i] = TimelineSlotResponse{
			StartTime: e.Interval.Start.String(),
			EndTime:   e.Interval.End.String(),
			Resource: ResourceTag{
				ID:     e.ResourceID,
				Name:   e.ResourceName,
				Sport:  e.Sport,
				Vendor: e.VendorName,
			},
			Status:     string(e.Status),
			TotalPrice: e.TotalPrice,
			Actions:    e.Actions,
		}
	}
	return TimelineResponse{
		Slots: slots,
		Summary: SummaryResponse{
			Available:      result.Summary.Available,
			OpenMatches:    result.Summary.OpenMatches,
			PrivateMatches: result.Summary.PrivateMatches,
			Unavailable:    result.Summary.Unavailable,
		},
	}
}
