package menu

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
// PUT /manager/menu — set availability for a pair
// --------------------------------------------------
func (h *Handler) SetAvailability(c *gin.Context) {
	var req struct {
		RestaurantID int64 `json:"restaurant_id" binding:"required"`
		ProductID    int64 `json:"product_id" binding:"required"`
		Availability bool  `json:"availability"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.repo.SetAvailability(
		c.Request.Context(),
		req.RestaurantID,
		req.ProductID,
		req.Availability,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu entry updated"})
}
