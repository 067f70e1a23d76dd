package timeline

import (
	"github.com/shopspring/decimal"

	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/booking"
)

// Classification is the player-facing state of one timeline slot.
type Classification string

const (
	ClassificationAvailable    Classification = "available"
	ClassificationOpenMatch    Classification = "open_match"
	ClassificationPrivateMatch Classification = "private_match"
	ClassificationUnavailable  Classification = "unavailable"
)

// kindRules is the ordered classification table for overlapping bookings.
// Earlier entries win when a slot overlaps bookings of several kinds.
// Kinds not listed here (maintenance blocks and whatever comes next)
// classify as unavailable. Adding a new joinable kind is one line.
var kindRules = []struct {
	Kind  booking.Kind
	Class Classification
}{
	{booking.KindOpenMatch, ClassificationOpenMatch},
	{booking.KindPrivateBooking, ClassificationPrivateMatch},
}

// Classify resolves the state of one candidate slot against the blocking
// bookings of the same resource and date. No overlap at all means available.
func Classify(slot availability.TimeInterval, records []booking.Record) Classification {
	var overlapping []booking.Record
	for _, r := range records {
		if r.Blocks() && slot.Overlaps(r.Interval) {
			overlapping = append(overlapping, r)
		}
	}
	if len(overlapping) == 0 {
		return ClassificationAvailable
	}

	for _, rule := range kindRules {
		for _, r := range overlapping {
			if r.Kind == rule.Kind {
				return rule.Class
			}
		}
	}
	return ClassificationUnavailable
}

// ActionsFor returns the player-facing actions for a slot state. Private
// matches expose no actions: a private booking is not joinable, and that
// empty list is a contract, not an omission.
func ActionsFor(class Classification) []string {
	switch class {
	case ClassificationAvailable:
		return []string{"book"}
	case ClassificationOpenMatch:
		return []string{"request_to_join"}
	default:
		return []string{}
	}
}

// Entry is one classified slot in the cross-resource timeline feed.
type Entry struct {
	ResourceID   string
	ResourceName string
	Sport        string
	VendorName   string
	Interval     availability.TimeInterval
	Status       Classification
	// TotalPrice is set only for available slots.
	TotalPrice *decimal.Decimal
	Actions    []string
}

// Summary counts entries per classification. The counts always sum to the
// total number of slots in the feed.
type Summary struct {
	Available      int
	OpenMatches    int
	PrivateMatches int
	Unavailable    int
}

func (s *Summary) add(class Classification) {
	switch class {
	case ClassificationAvailable:
		s.Available++
	case ClassificationOpenMatch:
		s.OpenMatches++
	case ClassificationPrivateMatch:
		s.PrivateMatches++
	default:
		s.Unavailable++
	}
}

// Total returns the sum of all classification counts.
func (s Summary) Total() int {
	return s.Available + s.OpenMatches + s.PrivateMatches + s.Unavailable
}

// Result is the aggregated timeline for one request.
type Result struct {
	Slots   []Entry
	Summary Summary
}
