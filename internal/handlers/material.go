package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/database"
	"brodverk-backend/internal/models"
)

type MaterialHandler struct {
	materialQueries *database.MaterialQueries
}

func NewMaterialHandler(db *sql.DB) *MaterialHandler {
	return &MaterialHandler{materialQueries: database.NewMaterialQueries(db)}
}

func (h *MaterialHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	response, err := h.materialQueries.ListMaterials(c.Request.Context(), page, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	material, err := h.materialQueries.GetMaterialByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var req models.RawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material, err := h.materialQueries.CreateMaterial(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	var req models.RawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material, err := h.materialQueries.UpdateMaterial(c.Request.Context(), id, &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	if err := h.materialQueries.DeleteMaterial(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Raw material deleted"})
}
