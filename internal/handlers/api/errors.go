package api

import (
	"errors"
	"net/http"

	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps a rotation error to an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrItemExists),
		errors.Is(err, engine.ErrParticipantExists),
		errors.Is(err, engine.ErrEmptyRotation),
		errors.Is(err, engine.ErrSkipLimitExceeded),
		errors.Is(err, engine.ErrNotTurnHolder):
		return http.StatusConflict
	case errors.Is(err, engine.ErrInvalidPosition),
		errors.Is(err, engine.ErrInvalidOrder),
		errors.Is(err, engine.ErrInvalidName),
		errors.Is(err, engine.ErrInvalidRarity),
		errors.Is(err, engine.ErrInvalidPriority),
		errors.Is(err, engine.ErrSelfSwap),
		errors.Is(err, engine.ErrInvalidSnapshot),
		errors.Is(err, engine.ErrNilInput),
		errors.Is(err, rotationService.ErrGuildRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, op string, err error) {
	status := statusFor(err)
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("guild_id", c.Param("guildID")),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("api request failed", fields...)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	s.logger.Info("api request rejected", fields...)
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
