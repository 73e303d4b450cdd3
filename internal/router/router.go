package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/ttacon/libphonenumber"

	"github.com/qqJonni/star-burger/internal/menu"
	"github.com/qqJonni/star-burger/internal/middleware"
	"github.com/qqJonni/star-burger/internal/order"
	"github.com/qqJonni/star-burger/internal/product"
	"github.com/qqJonni/star-burger/internal/restaurant"
)

// New assembles the gin engine with all routes and middleware.
func New(
	log *logrus.Logger,
	orderHandler *order.Handler,
	productHandler *product.Handler,
	restaurantHandler *restaurant.Handler,
	menuHandler *menu.Handler,
) *gin.Engine {

	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── PUBLIC API ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/products/", productHandler.ListProducts)
		api.GET("/banners/", productHandler.ListBanners)
		api.POST("/order/", orderHandler.Register)
	}

	// ───────────────────────── MANAGER ─────────────────────────
	manager := r.Group("/manager")
	{
		manager.GET("/orders/", orderHandler.ListUnassigned)
		manager.GET("/restaurants", restaurantHandler.ListRestaurants)
		manager.POST("/restaurants", restaurantHandler.CreateRestaurant)
		manager.PUT("/menu", menuHandler.SetAvailability)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// registerValidators adds the phonenumber rule to gin's validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("phonenumber", func(fl validator.FieldLevel) bool {
		parsed, err := libphonenumber.Parse(fl.Field().String(), "RU")
		if err != nil {
			return false
		}
		return libphonenumber.IsValidNumber(parsed)
	})
}
