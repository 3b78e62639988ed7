package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/database"
	"brodverk-backend/internal/logger"
	"brodverk-backend/internal/middleware"
	"brodverk-backend/internal/models"
)

type OrderHandler struct {
	orderQueries *database.OrderQueries
	log          *logger.Logger
}

func NewOrderHandler(db *sql.DB, log *logger.Logger) *OrderHandler {
	return &OrderHandler{orderQueries: database.NewOrderQueries(db), log: log}
}

func (h *OrderHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	status := c.Query("status")

	response, err := h.orderQueries.ListOrders(c.Request.Context(), page, limit, status)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orderQueries.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus moves an order through the fulfilment pipeline. Illegal
// transitions are rejected inside the transaction.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	order, err := h.orderQueries.TransitionOrderStatus(c.Request.Context(), id, req.Status, session.UserID)
	if err != nil {
		renderError(c, err)
		return
	}

	h.log.Infow("order status changed",
		"order_id", order.ID, "status", order.Status, "changed_by", session.UserID)
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) StatusHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	history, err := h.orderQueries.GetOrderStatusHistory(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
