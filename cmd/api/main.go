package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/qqJonni/star-burger/internal/db"
	"github.com/qqJonni/star-burger/internal/geocode"
	"github.com/qqJonni/star-burger/internal/menu"
	"github.com/qqJonni/star-burger/internal/order"
	"github.com/qqJonni/star-burger/internal/product"
	"github.com/qqJonni/star-burger/internal/ranking"
	"github.com/qqJonni/star-burger/internal/restaurant"
	"github.com/qqJonni/star-burger/internal/router"
)

func main() {

	// ───────────────────────── LOGGING ─────────────────────────
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"GEOCODER_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(log)
	defer pgDB.Close()

	// ───────────────────────── GEOCODING ─────────────────────────
	geocodeCache := geocode.NewPostgresCache(pgDB)
	geocodeClient := geocode.NewYandexClient()

	resolver := geocode.NewResolver(
		geocodeCache,
		geocodeClient,
		os.Getenv("GEOCODER_API_KEY"),
		log,
	)

	ranker := ranking.NewRanker(resolver, geocodeConcurrency(), log)

	// ───────────────────────── REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	productRepo := product.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo)

	orderService := order.NewService(
		orderRepo,
		productRepo,
		restaurantRepo,
		menuRepo,
		ranker,
		log,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurant.NewHandler(restaurantService)
	productHandler := product.NewHandler(productRepo)
	menuHandler := menu.NewHandler(menuRepo)
	orderHandler := order.NewHandler(orderService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(
		log,
		orderHandler,
		productHandler,
		restaurantHandler,
		menuHandler,
	)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Infof("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// geocodeConcurrency bounds parallel calls to the geocoding provider.
func geocodeConcurrency() int {
	if raw := os.Getenv("GEOCODER_CONCURRENCY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 4
}
