package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres(log *logrus.Logger) *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed: ", err)
	}

	log.Info("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			address VARCHAR(100) NOT NULL DEFAULT '',
			contact_phone VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS product_categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			category_id BIGINT REFERENCES product_categories(id) ON DELETE SET NULL,
			price NUMERIC(8, 2) NOT NULL CHECK (price >= 0),
			description VARCHAR(400) NOT NULL DEFAULT '',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			special_status BOOLEAN NOT NULL DEFAULT FALSE
		)`,

		`CREATE TABLE IF NOT EXISTS restaurant_menu_items (
			restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			UNIQUE (restaurant_id, product_id)
		)`,

		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			status VARCHAR(20) NOT NULL DEFAULT 'new',
			payment VARCHAR(20) NOT NULL DEFAULT 'cashless',
			firstname VARCHAR(50) NOT NULL,
			lastname VARCHAR(50) NOT NULL,
			phonenumber VARCHAR(50) NOT NULL,
			address VARCHAR(120) NOT NULL,
			comment VARCHAR(128) NOT NULL DEFAULT '',
			restaurant_id BIGINT REFERENCES restaurants(id) ON DELETE SET NULL,
			total_price NUMERIC(10, 2) NOT NULL CHECK (total_price >= 0),
			registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			called_at TIMESTAMP NULL,
			delivered_at TIMESTAMP NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,

		`CREATE TABLE IF NOT EXISTS order_items (
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			UNIQUE (order_id, product_id)
		)`,

		`CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			lon DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
