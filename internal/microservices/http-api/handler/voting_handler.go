package handler

import (
	"net/http"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type VotingHandler struct {
	votingService service.VotingService
}

func NewVotingHandler(votingService service.VotingService) *VotingHandler {
	return &VotingHandler{votingService: votingService}
}

// RegisterRoutes mounts the admin voting window routes
func (h *VotingHandler) RegisterRoutes(router *gin.RouterGroup) {
	voting := router.Group("/voting", middleware.RequireAdmin())
	{
		voting.POST("/open", h.Open)
		voting.POST("/close", h.Close)
		voting.GET("/status", h.Status)
		voting.GET("/results", h.Results)
	}
}

// Open starts a voting window
// POST /api/voting/open
func (h *VotingHandler) Open(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.OpenVotingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	window, err := h.votingService.OpenWindow(c.Request.Context(), claims.HostelID, req.Week, req.DurationInDays, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, window)
}

// Close ends the active window for a week
// POST /api/voting/close
func (h *VotingHandler) Close(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CloseVotingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	window, err := h.votingService.CloseWindow(c.Request.Context(), claims.HostelID, req.Week, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}

// Status reports a week's window, or the latest one without ?week
// GET /api/voting/status?week=
func (h *VotingHandler) Status(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	week, valid := parseWeek(c.Query("week"))
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
		return
	}

	status, err := h.votingService.GetStatus(c.Request.Context(), claims.HostelID, week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Results tallies votes per dish
// GET /api/voting/results?week=
func (h *VotingHandler) Results(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	week, valid := parseWeek(c.Query("week"))
	if !valid || week == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
		return
	}

	results, err := h.votingService.Results(c.Request.Context(), claims.HostelID, week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
