package handler

import (
	"net/http"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type DishHandler struct {
	dishService service.DishService
}

func NewDishHandler(dishService service.DishService) *DishHandler {
	return &DishHandler{dishService: dishService}
}

// RegisterRoutes registers the student suggestion route and the admin review queue
func (h *DishHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/dishes/suggest", middleware.RequireStudent(), h.Suggest)

	admin := router.Group("/admin/dishes", middleware.RequireAdmin())
	{
		admin.GET("", h.List)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/reject", h.Reject)
	}
}

// Suggest queues a new dish for admin review
// POST /api/dishes/suggest
func (h *DishHandler) Suggest(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SuggestDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishService.SuggestDish(c.Request.Context(), claims.HostelID, claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dish)
}

// GET /api/admin/dishes?status=
func (h *DishHandler) List(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	dishes, err := h.dishService.ListDishes(c.Request.Context(), claims.HostelID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishes, "total": len(dishes)})
}

// POST /api/admin/dishes/:id/approve
func (h *DishHandler) Approve(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ApproveDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishService.ApproveDish(c.Request.Context(), claims.HostelID, c.Param("id"), claims.UserID, req.PriceScore, req.HealthScore)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dish)
}

// POST /api/admin/dishes/:id/reject
func (h *DishHandler) Reject(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.RejectDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}

	dish, err := h.dishService.RejectDish(c.Request.Context(), claims.HostelID, c.Param("id"), claims.UserID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dish)
}
