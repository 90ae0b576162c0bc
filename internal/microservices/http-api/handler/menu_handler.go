package handler

import (
	"log/slog"
	"net/http"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService service.MenuService
	recService  service.RecommendationService
}

func NewMenuHandler(menuService service.MenuService, recService service.RecommendationService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		recService:  recService,
	}
}

// RegisterRoutes registers menu routes. Admin routes manage drafts,
// student routes only ever see published menus.
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/menu")

	admin := menu.Group("", middleware.RequireAdmin())
	{
		admin.POST("/generate", h.Generate)
		admin.GET("/preview", h.Preview)
		admin.POST("/publish", h.Publish)
		admin.POST("/recommendations/recompute", h.Recompute)
	}

	student := menu.Group("", middleware.RequireRole("STUDENT", "ADMIN"))
	{
		student.GET("/current", h.Current)
		student.GET("/week/:week", h.ByWeek)
	}
}

// Generate builds next week's menu from the latest closed window
// POST /api/menu/generate
func (h *MenuHandler) Generate(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	resp, err := h.menuService.GenerateMenu(c.Request.Context(), claims.HostelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GET /api/menu/preview
func (h *MenuHandler) Preview(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	menu, err := h.menuService.PreviewMenu(c.Request.Context(), claims.HostelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// Publish makes a draft visible to students. An empty body publishes the latest draft.
// POST /api/menu/publish
func (h *MenuHandler) Publish(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.PublishMenuRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
	}
	if req.Week < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
		return
	}

	menu, err := h.menuService.PublishMenu(c.Request.Context(), claims.HostelID, req.Week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// POST /api/menu/recommendations/recompute
func (h *MenuHandler) Recompute(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	count, err := h.recService.ComputeRecommendations(c.Request.Context(), claims.HostelID)
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("recommendations recomputed", "hostel_id", claims.HostelID, "count", count, "admin_id", claims.UserID)

	c.JSON(http.StatusOK, dto.RecomputeResponse{
		Message: "Recommendations recomputed",
		Count:   count,
	})
}

// GET /api/menu/current
func (h *MenuHandler) Current(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	menu, err := h.menuService.CurrentMenu(c.Request.Context(), claims.HostelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// GET /api/menu/week/:week
func (h *MenuHandler) ByWeek(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	week, valid := parseWeek(c.Param("week"))
	if !valid || week == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
		return
	}

	menu, err := h.menuService.MenuByWeek(c.Request.Context(), claims.HostelID, week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}
