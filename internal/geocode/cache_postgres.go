package geocode

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCache struct {
	db *pgxpool.Pool
}

func NewPostgresCache(db *pgxpool.Pool) *PostgresCache {
	return &PostgresCache{db: db}
}

// --------------------------------------------------
// Lookup cached coordinates for an address
// --------------------------------------------------
func (c *PostgresCache) Lookup(ctx context.Context, address string) (*Point, error) {
	var point Point

	err := c.db.QueryRow(ctx, `
		SELECT lon, lat
		FROM geocode_cache
		WHERE address = $1
	`, address).Scan(&point.Lon, &point.Lat)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &point, nil
}

// --------------------------------------------------
// Store coordinates, first writer wins
// --------------------------------------------------
func (c *PostgresCache) Store(ctx context.Context, address string, point Point) error {
	tag, err := c.db.Exec(ctx, `
		INSERT INTO geocode_cache (address, lon, lat)
		VALUES ($1, $2, $3)
		ON CONFLICT (address) DO NOTHING
	`, address, point.Lon, point.Lat)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		return nil
	}

	// Row already existed. Identical coordinates make this a no-op,
	// anything else is a conflict and the stored value is kept.
	existing, err := c.Lookup(ctx, address)
	if err != nil {
		return err
	}
	if existing == nil || *existing != point {
		return ErrConflict
	}

	return nil
}
