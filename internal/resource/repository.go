package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/availability"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Resource, error)
	// List returns a page of resources plus the total match count.
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	// ListAll returns every resource matching the filter, for the
	// timeline view which aggregates across all of them.
	ListAll(ctx context.Context, filter Filter) ([]*Resource, error)
	// OperatingWindows resolves the configured window for each resource
	// on the given weekday. Resources without a row are absent from the
	// map; callers fall back to the default window.
	OperatingWindows(ctx context.Context, resourceIDs []string, weekday time.Weekday) (map[string]*availability.OperatingWindow, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var resourceColumns = []string{
	"r.id", "r.vendor_id", "v.name", "r.name", "r.sport", "r.format",
	"v.city", "v.area", "r.max_players", "r.hourly_rate", "r.currency",
	"r.weekend_multiplier", "r.created_at",
}

func scanResource(row pgx.Row, extra ...any) (*Resource, error) {
	var res Resource
	dest := []any{
		&res.ID, &res.VendorID, &res.VendorName, &res.Name, &res.Sport, &res.Format,
		&res.City, &res.Area, &res.MaxPlayers, &res.HourlyRate, &res.Currency,
		&res.WeekendMultiplier, &res.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(resourceColumns...).
		From("public.resources r").
		Join("public.vendors v ON r.vendor_id = v.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get resource query failed: %w", err)
	}

	res, err := scanResource(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) filtered(filter Filter) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(resourceColumns...).
		From("public.resources r").
		Join("public.vendors v ON r.vendor_id = v.id")

	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"r.sport": filter.Sport})
	}
	if filter.VendorID != "" {
		query = query.Where(squirrel.Eq{"r.vendor_id": filter.VendorID})
	}
	if filter.City != "" {
		query = query.Where(squirrel.Eq{"v.city": filter.City})
	}
	if filter.Area != "" {
		query = query.Where(squirrel.Eq{"v.area": filter.Area})
	}
	return query
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	query := r.filtered(filter).
		Column("count(*) OVER() as total_count").
		OrderBy("r.name ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list resources query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var result []*Resource
	var total int
	for rows.Next() {
		res, err := scanResource(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan resource failed: %w", err)
		}
		result = append(result, res)
	}

	return result, total, rows.Err()
}

func (r *pgxRepository) ListAll(ctx context.Context, filter Filter) ([]*Resource, error) {
	sql, args, err := r.filtered(filter).OrderBy("r.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all resources query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list all resources failed: %w", err)
	}
	defer rows.Close()

	var result []*Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource failed: %w", err)
		}
		result = append(result, res)
	}

	return result, rows.Err()
}

func (r *pgxRepository) OperatingWindows(ctx context.Context, resourceIDs []string, weekday time.Weekday) (map[string]*availability.OperatingWindow, error) {
	if len(resourceIDs) == 0 {
		return map[string]*availability.OperatingWindow{}, nil
	}

	// Minutes-since-midnight columns, matching the engine's TimeOfDay
	// representation. A close_minute of 1440 means midnight of the next day.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("resource_id", "is_open", "open_minute", "close_minute").
		From("public.resource_hours").
		Where(squirrel.Eq{"resource_id": resourceIDs}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build operating windows query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operating windows failed: %w", err)
	}
	defer rows.Close()

	windows := make(map[string]*availability.OperatingWindow, len(resourceIDs))
	for rows.Next() {
		var (
			resourceID        string
			isOpen            bool
			opensAt, closesAt int
		)
		if err := rows.Scan(&resourceID, &isOpen, &opensAt, &closesAt); err != nil {
			return nil, fmt.Errorf("scan operating window failed: %w", err)
		}
		windows[resourceID] = &availability.OperatingWindow{
			IsOpen: isOpen,
			Opens:  availability.TimeOfDay(opensAt),
			Closes: availability.TimeOfDay(closesAt),
		}
	}

	return windows, rows.Err()
}
