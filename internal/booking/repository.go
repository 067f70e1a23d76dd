package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/availability"
)

// Repository reads existing bookings for the availability engine. The
// booking write path (with payment) is a separate system; nothing here
// mutates booking rows.
type Repository interface {
	// ListForDate returns all blocking bookings (pending or confirmed)
	// for the given resources on the given date. One date-scoped query
	// per request, never one per slot.
	ListForDate(ctx context.Context, resourceIDs []string, date time.Time) ([]Record, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListForDate(ctx context.Context, resourceIDs []string, date time.Time) ([]Record, error) {
	if len(resourceIDs) == 0 {
		return nil, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "resource_id", "date", "start_minute", "end_minute", "kind", "status",
	).
		From("public.bookings").
		Where(squirrel.Eq{"resource_id": resourceIDs}).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		Where(squirrel.Eq{"status": []Status{StatusPending, StatusConfirmed}}).
		OrderBy("start_minute ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec        Record
			start, end int
		)
		if err := rows.Scan(&rec.ID, &rec.ResourceID, &rec.Date, &start, &end, &rec.Kind, &rec.Status); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}

		iv, err := availability.NewTimeInterval(availability.TimeOfDay(start), availability.TimeOfDay(end))
		if err != nil {
			// A malformed row must not take the whole endpoint down.
			continue
		}
		rec.Interval = iv
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GroupByResource indexes records by resource id for the timeline view.
func GroupByResource(records []Record) map[string][]Record {
	byResource := make(map[string][]Record, len(records))
	for _, r := range records {
		byResource[r.ResourceID] = append(byResource[r.ResourceID], r)
	}
	return byResource
}
