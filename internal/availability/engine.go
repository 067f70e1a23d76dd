package availability

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slot is one computed candidate for a resource on a date. It is ephemeral:
// computed per request, never persisted.
type Slot struct {
	Interval    TimeInterval
	IsAvailable bool
	// TotalPrice is nil when the slot is not available: price is
	// meaningless for a slot you cannot book. This is a contract, tests
	// rely on it.
	TotalPrice *decimal.Decimal
}

// Engine combines slot generation, conflict checking, and pricing for a
// single resource. It owns no state and is safe to share across goroutines.
type Engine struct {
	Generator *SlotGenerator
	Pricing   PricingCalculator
}

func NewEngine() *Engine {
	return &Engine{
		Generator: NewSlotGenerator(),
		Pricing:   NewPricingCalculator(),
	}
}

// Availability computes the slot grid for one resource on one date and marks
// each slot available or not against the supplied busy intervals.
//
// The function is pure: identical inputs always yield identical output, and
// degenerate inputs degrade instead of failing. A nil window falls back to
// the default grid, an empty busy list means no conflicts, and a window
// shorter than the duration yields an empty list.
func (e *Engine) Availability(date time.Time, window *OperatingWindow, rates RateCard, durationMinutes int, busy []TimeInterval) []Slot {
	candidates := e.Generator.Generate(window, durationMinutes)

	slots := make([]Slot, 0, len(candidates))
	for _, iv := range candidates {
		slot := Slot{Interval: iv, IsAvailable: !HasConflict(iv, busy)}
		if slot.IsAvailable {
			price := e.Pricing.TotalPrice(rates, date, iv)
			slot.TotalPrice = &price
		}
		slots = append(slots, slot)
	}
	return slots
}
