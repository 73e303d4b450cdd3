package order

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
// Create order + lines in one transaction
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (
			status,
			payment,
			firstname,
			lastname,
			phonenumber,
			address,
			comment,
			total_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, registered_at
	`,
		order.Status,
		order.Payment,
		order.Firstname,
		order.Lastname,
		order.Phonenumber,
		order.Address,
		order.Comment,
		order.TotalPrice.String(),
	).Scan(&order.ID, &order.RegisteredAt)
	if err != nil {
		return err
	}

	for _, line := range order.Lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, order.ID, line.ProductID, line.Quantity, line.Price.String()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Unassigned, undelivered orders with their lines
// --------------------------------------------------
func (r *PostgresRepository) ListUnassigned(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			status,
			payment,
			firstname,
			lastname,
			phonenumber,
			address,
			comment,
			restaurant_id,
			total_price::text,
			registered_at
		FROM orders
		WHERE status != $1
		  AND restaurant_id IS NULL
		ORDER BY registered_at
	`, StatusDelivered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	index := make(map[int64]*Order)

	for rows.Next() {
		var (
			ord   Order
			total string
		)
		if err := rows.Scan(
			&ord.ID,
			&ord.Status,
			&ord.Payment,
			&ord.Firstname,
			&ord.Lastname,
			&ord.Phonenumber,
			&ord.Address,
			&ord.Comment,
			&ord.RestaurantID,
			&total,
			&ord.RegisteredAt,
		); err != nil {
			return nil, err
		}

		ord.TotalPrice, err = decimal.NewFromString(total)
		if err != nil {
			return nil, err
		}

		orders = append(orders, &ord)
		index[ord.ID] = &ord
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, ord := range orders {
		ids = append(ids, ord.ID)
	}

	lineRows, err := r.db.Query(ctx, `
		SELECT order_id, product_id, quantity, price::text
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, product_id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			orderID int64
			line    Line
			price   string
		)
		if err := lineRows.Scan(&orderID, &line.ProductID, &line.Quantity, &price); err != nil {
			return nil, err
		}

		line.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}

		if ord, ok := index[orderID]; ok {
			ord.Lines = append(ord.Lines, line)
		}
	}

	return orders, lineRows.Err()
}
