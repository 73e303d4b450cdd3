package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List every menu entry
// --------------------------------------------------
func (r *PostgresRepository) ListEntries(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			restaurant_id,
			product_id,
			availability
		FROM restaurant_menu_items
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.RestaurantID,
			&entry.ProductID,
			&entry.Availability,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// --------------------------------------------------
// Upsert availability for (restaurant, product)
// --------------------------------------------------
func (r *PostgresRepository) SetAvailability(
	ctx context.Context,
	restaurantID int64,
	productID int64,
	available bool,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id, product_id)
		DO UPDATE SET availability = EXCLUDED.availability
	`, restaurantID, productID, available)

	return err
}
