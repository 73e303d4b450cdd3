package product

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Products referenced by at least one available menu
// entry, with their category
// --------------------------------------------------
func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT
			p.id,
			p.name,
			p.price::text,
			p.special_status,
			p.description,
			p.image_url,
			c.id,
			c.name
		FROM products p
		LEFT JOIN product_categories c
		  ON c.id = p.category_id
		WHERE p.id IN (
			SELECT product_id
			FROM restaurant_menu_items
			WHERE availability = TRUE
		)
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product

	for rows.Next() {
		var (
			p            Product
			price        string
			categoryID   *int64
			categoryName *string
		)

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&price,
			&p.SpecialStatus,
			&p.Description,
			&p.ImageURL,
			&categoryID,
			&categoryName,
		); err != nil {
			return nil, err
		}

		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}

		if categoryID != nil && categoryName != nil {
			p.Category = &Category{ID: *categoryID, Name: *categoryName}
		}

		products = append(products, &p)
	}

	return products, rows.Err()
}

// --------------------------------------------------
// Unit prices for a set of product ids
// --------------------------------------------------
func (r *PostgresRepository) GetPrices(
	ctx context.Context,
	ids []int64,
) (map[int64]decimal.Decimal, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, price::text
		FROM products
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[int64]decimal.Decimal, len(ids))

	for rows.Next() {
		var (
			id    int64
			price string
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}

		prices[id], err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
	}

	return prices, rows.Err()
}
