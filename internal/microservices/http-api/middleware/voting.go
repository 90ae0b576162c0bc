package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// VotingGate reports whether a hostel's window for week accepts votes.
type VotingGate interface {
	IsOpen(ctx context.Context, hostelID string, week int) (bool, error)
}

type weekBody struct {
	Week int `json:"week"`
}

// EnsureVotingOpen rejects the request with 403 unless the window for the
// body's week is open. The body is cached so the handler can bind it again.
func EnsureVotingOpen(gate VotingGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var body weekBody
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}

		open, err := gate.IsOpen(c.Request.Context(), claims.HostelID, body.Week)
		if err != nil {
			slog.Error("voting gate failed", "hostel_id", claims.HostelID, "week", body.Week, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !open {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Voting is not open at this time"})
			return
		}

		c.Next()
	}
}
