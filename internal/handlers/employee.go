package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/database"
	"brodverk-backend/internal/middleware"
	"brodverk-backend/internal/models"
)

// EmployeeHandler manages console accounts. All routes are admin-only.
type EmployeeHandler struct {
	userQueries *database.UserQueries
}

func NewEmployeeHandler(db *sql.DB) *EmployeeHandler {
	return &EmployeeHandler{userQueries: database.NewUserQueries(db)}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	search := c.Query("search")

	response, err := h.userQueries.ListUsers(c.Request.Context(), page, limit, search)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userQueries.GetUserByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	user, err := h.userQueries.CreateUser(c.Request.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userQueries.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// An admin cannot delete their own account.
	if session, ok := middleware.Session(c); ok && session.UserID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	if err := h.userQueries.DeleteUser(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// pagination reads page/limit query params with sane bounds.
func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
