package booking

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/availability"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Kind distinguishes what a booking occupies a slot for. The set is open:
// unknown kinds (e.g. maintenance blocks) still block time, they just carry
// no player-facing meaning.
type Kind string

const (
	KindPrivateBooking Kind = "private_booking"
	KindOpenMatch      Kind = "open_match"
	KindMaintenance    Kind = "maintenance"
)

// Record is a read-only projection of an existing booking. Records are
// created by the booking write path, which lives outside this service; the
// availability engine only ever reads them.
type Record struct {
	ID         string
	ResourceID string
	Date       time.Time
	Interval   availability.TimeInterval
	Kind       Kind
	Status     Status
}

// Blocks reports whether the booking participates in conflict checks.
// Cancelled and completed bookings do not block new slots.
func (r Record) Blocks() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// BlockingIntervals extracts the busy intervals from the blocking records.
func BlockingIntervals(records []Record) []availability.TimeInterval {
	var busy []availability.TimeInterval
	for _, r := range records {
		if r.Blocks() {
			busy = append(busy, r.Interval)
		}
	}
	return busy
}
