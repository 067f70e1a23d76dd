package tenant

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Resolver maps a request hostname to a vendor. A nil vendor with a nil
// error means marketplace-wide scope: unknown subdomains are not an error.
type Resolver interface {
	Resolve(ctx context.Context, host string) (*Vendor, error)
}

type pgxResolver struct {
	pool *pgxpool.Pool
	// baseDomain is the marketplace apex, e.g. "courtside.app". Hosts
	// that are not subdomains of it resolve to no vendor.
	baseDomain string
}

func NewPgxResolver(pool *pgxpool.Pool, baseDomain string) Resolver {
	return &pgxResolver{pool: pool, baseDomain: baseDomain}
}

func (r *pgxResolver) Resolve(ctx context.Context, host string) (*Vendor, error) {
	sub := Subdomain(host, r.baseDomain)
	if sub == "" {
		return nil, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "subdomain", "created_at").
		From("public.vendors").
		Where(squirrel.Eq{"subdomain": sub}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve vendor query failed: %w", err)
	}

	var v Vendor
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&v.ID, &v.Name, &v.Subdomain, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve vendor failed: %w", err)
	}
	return &v, nil
}

// Subdomain extracts the vendor label from a request host. It returns ""
// for the apex itself, for hosts outside the base domain, and for "www".
func Subdomain(host, baseDomain string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	baseDomain = strings.ToLower(baseDomain)

	if baseDomain == "" || host == baseDomain {
		return ""
	}
	sub, ok := strings.CutSuffix(host, "."+baseDomain)
	if !ok || sub == "" || sub == "www" || strings.Contains(sub, ".") {
		return ""
	}
	return sub
}
