package timeline

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/booking"
	"github.com/courtsidehq/courtside-backend/internal/resource"
)

// DefaultWorkers bounds the per-resource computation fan-out when no
// explicit worker count is configured.
const DefaultWorkers = 8

type Service interface {
	// GetTimeline computes the classified slot feed across every resource
	// matching the filter. A malformed date degrades to an empty result;
	// only infrastructure failures and caller cancellation surface as
	// errors.
	GetTimeline(ctx context.Context, filter resource.Filter, date string, durationMinutes int) (*Result, error)
}

type service struct {
	resources resource.Repository
	bookings  booking.Repository
	engine    *availability.Engine
	workers   int
}

func NewService(resources resource.Repository, bookings booking.Repository, engine *availability.Engine, workers int) Service {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &service{
		resources: resources,
		bookings:  bookings,
		engine:    engine,
		workers:   workers,
	}
}

func (s *service) GetTimeline(ctx context.Context, filter resource.Filter, date string, durationMinutes int) (*Result, error) {
	day, err := availability.ParseDate(date)
	if err != nil {
		return emptyResult(), nil
	}

	resources, err := s.resources.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return emptyResult(), nil
	}

	ids := make([]string, len(resources))
	for i, res := range resources {
		ids[i] = res.ID
	}

	windows, err := s.resources.OperatingWindows(ctx, ids, day.Weekday())
	if err != nil {
		return nil, err
	}

	records, err := s.bookings.ListForDate(ctx, ids, day)
	if err != nil {
		return nil, err
	}

	entries, err := s.build(ctx, resources, windows, booking.GroupByResource(records), day, durationMinutes)
	if err != nil {
		return nil, err
	}

	sortEntries(entries)

	result := &Result{Slots: entries}
	for _, e := range entries {
		result.Summary.add(e.Status)
	}
	return result, nil
}

// build computes each resource's slots concurrently. Resources are
// independent, so only the final sort imposes ordering. Per-resource results
// land in a fixed slice index; a cancelled context aborts the loop and the
// whole request, never returning a partially computed resource.
func (s *service) build(
	ctx context.Context,
	resources []*resource.Resource,
	windows map[string]*availability.OperatingWindow,
	bookingsByResource map[string][]booking.Record,
	day time.Time,
	durationMinutes int,
) ([]Entry, error) {
	perResource := make([][]Entry, len(resources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, res := range resources {
		i, res := i, res
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perResource[i] = s.buildResource(res, windows[res.ID], bookingsByResource[res.ID], day, durationMinutes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []Entry
	for _, slots := range perResource {
		entries = append(entries, slots...)
	}
	return entries, nil
}

func (s *service) buildResource(
	res *resource.Resource,
	window *availability.OperatingWindow,
	records []booking.Record,
	day time.Time,
	durationMinutes int,
) []Entry {
	candidates := s.engine.Generator.Generate(window, durationMinutes)

	entries := make([]Entry, 0, len(candidates))
	for _, iv := range candidates {
		class := Classify(iv, records)
		entry := Entry{
			ResourceID:   res.ID,
			ResourceName: res.Name,
			Sport:        res.Sport,
			VendorName:   res.VendorName,
			Interval:     iv,
			Status:       class,
			Actions:      ActionsFor(class),
		}
		if class == ClassificationAvailable {
			price := s.engine.Pricing.TotalPrice(res.RateCard(), day, iv)
			entry.TotalPrice = &price
		}
		entries = append(entries, entry)
	}
	return entries
}

// sortEntries orders the feed by start time, then resource name, then
// resource id. Deterministic ordering keeps the pagination-free list stable
// across identical requests.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Interval.Start != b.Interval.Start {
			return a.Interval.Start < b.Interval.Start
		}
		if a.ResourceName != b.ResourceName {
			return a.ResourceName < b.ResourceName
		}
		return a.ResourceID < b.ResourceID
	})
}

func emptyResult() *Result {
	return &Result{Slots: []Entry{}}
}
