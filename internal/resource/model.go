package resource

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "resource not found")

// Resource is a read-only projection of a bookable unit (court, turf,
// venue) together with the vendor and pricing attributes the availability
// engine needs. The engine never mutates it.
type Resource struct {
	ID                string
	VendorID          string
	VendorName        string
	Name              string
	Sport             string
	Format            string
	City              string
	Area              string
	MaxPlayers        int
	HourlyRate        decimal.Decimal
	Currency          string
	WeekendMultiplier *decimal.Decimal
	CreatedAt         time.Time
}

// RateCard projects the pricing attributes for the calculator.
func (r *Resource) RateCard() availability.RateCard {
	return availability.RateCard{
		HourlyRate:        r.HourlyRate,
		Currency:          r.Currency,
		WeekendMultiplier: r.WeekendMultiplier,
	}
}

// Filter defines parameters for listing resources. VendorID is usually
// filled in by the tenant middleware rather than the caller.
type Filter struct {
	Sport    string
	VendorID string
	City     string
	Area     string
	Page     int
	PageSize int
}
