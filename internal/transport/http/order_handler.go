package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/record-store/internal/domain"
)

// placeOrderRequest — тело POST /orders.
type placeOrderRequest struct {
	RecordID int64 `json:"recordId" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// placeOrder — POST /orders: атомарное «списать остаток, зафиксировать заказ».
func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recordId and quantity must be positive"})
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), req.RecordID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient stock"})
		default:
			h.log.Errorf(c.Request.Context(), "PlaceOrder failed record_id=%d err=%v", req.RecordID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}
