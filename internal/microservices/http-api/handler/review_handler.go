package handler

import (
	"net/http"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/meal-reviews", middleware.RequireStudent(), h.Submit)
	router.GET("/admin/reviews", middleware.RequireAdmin(), h.List)
}

// Submit records a student's rating of a served dish
// POST /api/meal-reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), claims.HostelID, claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// List pages through reviews with optional filters
// GET /api/admin/reviews?mealType=&dishId=&date=&page=&limit=
func (h *ReviewHandler) List(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var query dto.ReviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.reviewService.ListReviews(c.Request.Context(), claims.HostelID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
