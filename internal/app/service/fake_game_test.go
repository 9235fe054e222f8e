package service

import (
	"context"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

// fakeGame implementa GameAPI, LeaderboardAPI y StaffAPI en memoria.
type fakeGame struct {
	status    []domain.ServerStatus
	byID      map[string]*domain.User
	byName    map[string]*domain.User
	stats     map[string]*domain.UserStats
	alliances map[string]*domain.Alliance
	xp        []domain.LeaderboardEntry
	allyLb    []domain.LeaderboardEntry
	err       error

	banned   map[string]string
	unbanned []string
	applied  bool
}

func newFakeGame() *fakeGame {
	return &fakeGame{
		byID:      map[string]*domain.User{},
		byName:    map[string]*domain.User{},
		stats:     map[string]*domain.UserStats{},
		alliances: map[string]*domain.Alliance{},
		banned:    map[string]string{},
		applied:   true,
	}
}

func (f *fakeGame) addUser(u *domain.User) {
	f.byID[u.ID] = u
	f.byName[u.Name] = u
}

func (f *fakeGame) GetServerStatus(context.Context) ([]domain.ServerStatus, error) {
	return f.status, f.err
}

func (f *fakeGame) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGame) GetUserByName(_ context.Context, name string) (*domain.User, error) {
	if u, ok := f.byName[name]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGame) GetUserStats(_ context.Context, id string) (*domain.UserStats, error) {
	if s, ok := f.stats[id]; ok {
		return s, nil
	}
	return &domain.UserStats{}, nil
}

func (f *fakeGame) GetAlliance(_ context.Context, name string) (*domain.Alliance, error) {
	if a, ok := f.alliances[name]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGame) GetXpLeaderboard(context.Context) ([]domain.LeaderboardEntry, error) {
	return f.xp, f.err
}

func (f *fakeGame) GetAllianceLeaderboard(context.Context) ([]domain.LeaderboardEntry, error) {
	return f.allyLb, f.err
}

func (f *fakeGame) BanUser(_ context.Context, userID, reason string) (bool, error) {
	f.banned[userID] = reason
	return f.applied, nil
}

func (f *fakeGame) UnbanUser(_ context.Context, userID string) (bool, error) {
	f.unbanned = append(f.unbanned, userID)
	return f.applied, nil
}
