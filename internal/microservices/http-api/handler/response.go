package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hostelhub/internal/apperror"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/shared"

	"github.com/gin-gonic/gin"
)

// respondError writes err using its apperror kind. Unclassified errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"request_id", c.GetString(middleware.RequestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUser aborts with 401 when the auth middleware did not run.
func currentUser(c *gin.Context) (shared.AuthClaims, bool) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return shared.AuthClaims{}, false
	}
	return claims, true
}

// parseWeek reads an optional positive week; absent means 0.
func parseWeek(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	week, err := strconv.Atoi(raw)
	if err != nil || week <= 0 {
		return 0, false
	}
	return week, true
}
