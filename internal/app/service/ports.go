package service

import (
	"context"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

// Lo implementa internal/adapters/galaxylife.Client
type GameAPI interface {
	GetServerStatus(ctx context.Context) ([]domain.ServerStatus, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByName(ctx context.Context, name string) (*domain.User, error)
	GetUserStats(ctx context.Context, id string) (*domain.UserStats, error)
	GetAlliance(ctx context.Context, name string) (*domain.Alliance, error)
}

type LeaderboardAPI interface {
	GetXpLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	GetAllianceLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// StaffAPI: endpoints que requieren token de staff.
type StaffAPI interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByName(ctx context.Context, name string) (*domain.User, error)
	BanUser(ctx context.Context, userID, reason string) (bool, error)
	UnbanUser(ctx context.Context, userID string) (bool, error)
}
