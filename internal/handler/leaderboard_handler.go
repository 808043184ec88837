package handler

import (
	"net/http"

	"github.com/citifix/citifix-backend/internal/service"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GET /api/leaderboard
func (h *LeaderboardHandler) Get(c *gin.Context) {
	ranked, err := h.leaderboardService.Rank()
	if err != nil {
		logger.Log.Error("Failed to build leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ranked)
}
