package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /api/products/
// --------------------------------------------------
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.repo.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	if products == nil {
		products = []*Product{}
	}

	c.JSON(http.StatusOK, products)
}

// --------------------------------------------------
// GET /api/banners/
// --------------------------------------------------
func (h *Handler) ListBanners(c *gin.Context) {
	// TODO: move banner data to the db
	c.JSON(http.StatusOK, []Banner{
		{
			Title: "Burger",
			Src:   "/static/burger.jpg",
			Text:  "Tasty Burger at your door step",
		},
		{
			Title: "Spices",
			Src:   "/static/food.jpg",
			Text:  "All Cuisines",
		},
		{
			Title: "New York",
			Src:   "/static/tasty.jpg",
			Text:  "Food is incomplete without a tasty dessert",
		},
	})
}
