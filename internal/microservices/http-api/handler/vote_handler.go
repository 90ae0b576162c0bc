package handler

import (
	"net/http"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type VoteHandler struct {
	voteService   service.VoteService
	votingService service.VotingService
}

func NewVoteHandler(voteService service.VoteService, votingService service.VotingService) *VoteHandler {
	return &VoteHandler{
		voteService:   voteService,
		votingService: votingService,
	}
}

// RegisterRoutes mounts the student voting routes
func (h *VoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	votes := router.Group("/menu-votes", middleware.RequireStudent())
	{
		votes.POST("/vote", middleware.EnsureVotingOpen(h.votingService), h.Vote)
		votes.GET("/status", h.Status)
	}
}

// Vote records the student's full ballot for a week
// POST /api/menu-votes/vote
func (h *VoteHandler) Vote(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	// the gate middleware already consumed the body
	var req dto.SubmitVotesRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	if req.Votes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "votes are required"})
		return
	}

	resp, err := h.voteService.SubmitVotes(c.Request.Context(), claims.HostelID, claims.UserID, req.Week, *req.Votes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Status returns the latest window and whether the caller already voted in it
// GET /api/menu-votes/status
func (h *VoteHandler) Status(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := h.votingService.GetStatus(c.Request.Context(), claims.HostelID, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.StudentVotingStatusResponse{VotingStatusResponse: *status}
	if status.Initialized {
		voted, err := h.voteService.HasVoted(c.Request.Context(), claims.HostelID, claims.UserID, status.Week)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.HasVoted = voted
	}

	c.JSON(http.StatusOK, resp)
}
