package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

// mockResponder graba todo lo que el router le manda a Discord.
type mockResponder struct {
	mu        sync.Mutex
	responds  []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	followups []*discordgo.WebhookParams
	msgEdits  []*discordgo.MessageEdit
	editErr   error
}

func (m *mockResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responds = append(m.responds, resp)
	return nil
}

func (m *mockResponder) InteractionResponseEdit(_ *discordgo.Interaction, e *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editErr != nil {
		return nil, m.editErr
	}
	m.edits = append(m.edits, e)
	return &discordgo.Message{ID: "msg-1", ChannelID: "chan-1"}, nil
}

func (m *mockResponder) ChannelMessageEditComplex(e *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgEdits = append(m.msgEdits, e)
	return &discordgo.Message{ID: e.ID, ChannelID: e.Channel}, nil
}

func (m *mockResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, p *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.followups = append(m.followups, p)
	return &discordgo.Message{ID: "followup-1"}, nil
}

func (m *mockResponder) lastEdit() *discordgo.WebhookEdit {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.edits) == 0 {
		return nil
	}
	return m.edits[len(m.edits)-1]
}

// stubGame implementa los puertos de service en memoria.
type stubGame struct {
	users  map[string]*domain.User
	xp     []domain.LeaderboardEntry
	err    error
	banned []string
}

func (g *stubGame) GetServerStatus(context.Context) ([]domain.ServerStatus, error) {
	return []domain.ServerStatus{{Name: "Android", IsOnline: true, Ping: 12}}, g.err
}

func (g *stubGame) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	if g.err != nil {
		return nil, g.err
	}
	for _, u := range g.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (g *stubGame) GetUserByName(_ context.Context, name string) (*domain.User, error) {
	if u, ok := g.users[name]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (g *stubGame) GetUserStats(context.Context, string) (*domain.UserStats, error) {
	return &domain.UserStats{}, nil
}

func (g *stubGame) GetAlliance(context.Context, string) (*domain.Alliance, error) {
	return nil, domain.ErrNotFound
}

func (g *stubGame) GetXpLeaderboard(context.Context) ([]domain.LeaderboardEntry, error) {
	return g.xp, g.err
}

func (g *stubGame) GetAllianceLeaderboard(context.Context) ([]domain.LeaderboardEntry, error) {
	return nil, g.err
}

func (g *stubGame) BanUser(_ context.Context, userID, _ string) (bool, error) {
	g.banned = append(g.banned, userID)
	return true, nil
}

func (g *stubGame) UnbanUser(context.Context, string) (bool, error) { return true, nil }
