package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/database"
	"brodverk-backend/internal/models"
)

type ProductHandler struct {
	productQueries *database.ProductQueries
}

func NewProductHandler(db *sql.DB) *ProductHandler {
	return &ProductHandler{productQueries: database.NewProductQueries(db)}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	var activeFilter *bool
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		activeFilter = &active
	}

	response, err := h.productQueries.ListProducts(c.Request.Context(), page, limit, activeFilter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Search backs the product multiselect on the discount screens. Matches
// active products by name, returns [{product, name}].
func (h *ProductHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 50 {
		limit = 20
	}

	results, err := h.productQueries.SearchProducts(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		renderError(c, err)
		return
	}
	if results == nil {
		results = []models.ProductSearchResult{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.productQueries.GetProductByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productQueries.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productQueries.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.productQueries.DeleteProduct(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
