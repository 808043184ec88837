package service

import (
	"github.com/citifix/citifix-backend/internal/repository"
	"github.com/citifix/citifix-backend/pkg/logger"
	"go.uber.org/zap"
)

// RankedUser is a leaderboard entry with its 1-based position.
type RankedUser struct {
	Rank int `json:"rank"`
	repository.LeaderboardEntry
}

type LeaderboardService struct {
	userRepo *repository.UserRepository
}

func NewLeaderboardService(userRepo *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo}
}

// Rank returns every user ordered by complaint count descending, annotated
// with a rank matching the sort position. Users with zero complaints are
// included; ties break arbitrarily but consistently within one query.
func (s *LeaderboardService) Rank() ([]RankedUser, error) {
	entries, err := s.userRepo.GetLeaderboard()
	if err != nil {
		logger.Log.Error("Failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}

	ranked := make([]RankedUser, 0, len(entries))
	for i, entry := range entries {
		ranked = append(ranked, RankedUser{
			Rank:             i + 1,
			LeaderboardEntry: entry,
		})
	}

	return ranked, nil
}
