package galaxylife

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

var ErrNoStaffToken = errors.New("staff token not configured")

func (c *Client) GetServerStatus(ctx context.Context) ([]domain.ServerStatus, error) {
	var dto []serverStatusDTO
	if err := c.doJSON(ctx, http.MethodGet, c.statusURL, "/status", nil, false, &dto); err != nil {
		return nil, err
	}
	out := make([]domain.ServerStatus, 0, len(dto))
	for _, s := range dto {
		out = append(out, domain.ServerStatus{Name: s.Name, IsOnline: s.IsOnline, Ping: s.Ping})
	}
	return out, nil
}

func (c *Client) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	q := url.Values{}
	q.Set("userId", id)

	var dto userDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL, "/Users/get", q, false, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	q := url.Values{}
	q.Set("name", name)

	var dto userDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL, "/Users/name", q, false, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) GetUserStats(ctx context.Context, id string) (*domain.UserStats, error) {
	q := url.Values{}
	q.Set("userId", id)

	var dto userStatsDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL, "/Users/stats", q, false, &dto); err != nil {
		return nil, err
	}
	s := domain.UserStats(dto)
	return &s, nil
}

func (c *Client) GetAlliance(ctx context.Context, name string) (*domain.Alliance, error) {
	q := url.Values{}
	q.Set("name", name)

	var dto allianceDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL, "/Alliances/get", q, false, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// GetXpLeaderboard: la API ya los devuelve ordenados; el rank es la posición.
func (c *Client) GetXpLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var dto []playerLbDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL, "/Leaderboard/xp", nil, false, &dto); err != nil {
		return nil, err
	}
	out := make([]domain.LeaderboardEntry, 0, len(dto))
	for i, p := range dto {
		out = append(out, domain.LeaderboardEntry{Rank: i + 1, ID: p.ID, Name: p.Name, Level: p.Level, Value: p.Experience})
	}
	return out, nil
}

func (c *Client) GetAllianceLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var dto []allianceLbDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL, "/Leaderboard/warpoints", nil, false, &dto); err != nil {
		return nil, err
	}
	out := make([]domain.LeaderboardEntry, 0, len(dto))
	for i, a := range dto {
		out = append(out, domain.LeaderboardEntry{Rank: i + 1, Name: a.Name, Level: a.AllianceLevel, Value: a.WarPoints})
	}
	return out, nil
}

// BanUser devuelve false si la API respondió pero no aplicó el ban.
func (c *Client) BanUser(ctx context.Context, userID, reason string) (bool, error) {
	if c.staffToken == "" {
		return false, ErrNoStaffToken
	}
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("reason", reason)

	var ok bool
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL, "/Staff/ban", q, true, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *Client) UnbanUser(ctx context.Context, userID string) (bool, error) {
	if c.staffToken == "" {
		return false, ErrNoStaffToken
	}
	q := url.Values{}
	q.Set("userId", userID)

	var ok bool
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL, "/Staff/unban", q, true, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
