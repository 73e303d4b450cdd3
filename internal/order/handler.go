package order

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/order/
// --------------------------------------------------
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Firstname   string `json:"firstname" binding:"required"`
		Lastname    string `json:"lastname" binding:"required"`
		Phonenumber string `json:"phonenumber" binding:"required,phonenumber"`
		Address     string `json:"address" binding:"required"`
		Comment     string `json:"comment"`
		Payment     string `json:"payment" binding:"omitempty,oneof=cash cashless"`
		Products    []struct {
			Product  int64 `json:"product" binding:"required"`
			Quantity int   `json:"quantity" binding:"required,min=1"`
		} `json:"products" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := RegisterInput{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Phonenumber: req.Phonenumber,
		Address:     req.Address,
		Comment:     req.Comment,
		Payment:     req.Payment,
	}
	for _, p := range req.Products {
		input.Products = append(input.Products, RegisterLine{
			ProductID: p.Product,
			Quantity:  p.Quantity,
		})
	}

	ord, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ord)
}

// --------------------------------------------------
// GET /manager/orders/
// --------------------------------------------------
func (h *Handler) ListUnassigned(c *gin.Context) {
	orders, err := h.service.UnassignedOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
