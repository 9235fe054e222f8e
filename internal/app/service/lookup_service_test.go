package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

var asker = Requester{ID: "42", Username: "Kayu"}

func seededGame() *fakeGame {
	g := newFakeGame()
	g.addUser(&domain.User{
		ID: "1001", Name: "Kayu", Avatar: "https://img/a.png", Level: 51, Experience: 12_345_678,
		AllianceID: "None",
		Planets:    []*domain.Planet{{HQLevel: 9}, {HQLevel: 5}, nil, {HQLevel: 3}},
	})
	g.addUser(&domain.User{ID: "77", Name: "Bob", Level: 3, AllianceID: "Stars"})
	g.stats["1001"] = &domain.UserStats{PlayersAttacked: 12, CoinsSpent: 1_500_000, TotalPlayTimeInMs: 3_600_000}
	g.alliances["Stars"] = &domain.Alliance{
		ID: "a1", Name: "Stars", AllianceLevel: 7, WarPoints: 9000, WarsWon: 3, WarsLost: 2,
		Emblem: domain.Emblem{Shape: 1, Pattern: 2, Icon: 3},
		Members: []domain.AllianceMember{
			{ID: "77", Name: "Bob", Role: domain.RoleLeader},
			{ID: "78", Name: "Ann", Role: domain.RoleAdmin},
			{ID: "79", Name: "Cid", Role: domain.RoleRegular},
			{ID: "80", Name: "Dee", Role: domain.RoleRegular},
		},
	}
	return g
}

func TestResolveUser_FallsBackToName(t *testing.T) {
	svc := NewLookupService(seededGame())

	u, err := svc.ResolveUser(context.Background(), "1001", asker)
	require.NoError(t, err)
	assert.Equal(t, "Kayu", u.Name)

	u, err = svc.ResolveUser(context.Background(), " Bob ", asker)
	require.NoError(t, err)
	assert.Equal(t, "77", u.ID)

	// sin input se usa el username de quien pregunta
	u, err = svc.ResolveUser(context.Background(), "", asker)
	require.NoError(t, err)
	assert.Equal(t, "1001", u.ID)
}

func TestResolveUser_NotFound(t *testing.T) {
	svc := NewLookupService(seededGame())

	_, err := svc.ResolveUser(context.Background(), "ghost", asker)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "No user found for ghost", nf.Error())
}

func TestResolveUser_TransportErrorIsNotMasked(t *testing.T) {
	g := seededGame()
	g.err = errors.New("boom")
	svc := NewLookupService(g)

	_, err := svc.ResolveUser(context.Background(), "1001", asker)
	require.EqualError(t, err, "boom")
}

func TestStatus_FuzzyFilter(t *testing.T) {
	g := newFakeGame()
	g.status = []domain.ServerStatus{
		{Name: "Android", IsOnline: true, Ping: 40},
		{Name: "Backend", IsOnline: false, Ping: 0},
	}
	svc := NewLookupService(g)

	all, err := svc.Status(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all.Fields, 2)
	assert.Equal(t, "Android (40ms)", all.Fields[0].Name)
	assert.Equal(t, "✅ Running", all.Fields[0].Value)
	assert.Equal(t, "🛑 Down", all.Fields[1].Value)

	one, err := svc.Status(context.Background(), "andr")
	require.NoError(t, err)
	require.Len(t, one.Fields, 1)
	assert.Equal(t, "Android (40ms)", one.Fields[0].Name)

	_, err = svc.Status(context.Background(), "zzz")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "server", nf.Kind)
}

func TestStats(t *testing.T) {
	svc := NewLookupService(seededGame())

	e, err := svc.Stats(context.Background(), "Kayu", asker)
	require.NoError(t, err)
	assert.Equal(t, "Statistics for Kayu (1001)", e.Title)
	assert.Contains(t, e.Description, "User is not in any alliance.")
	assert.Contains(t, e.Description, "User is level **51**.")
	assert.Equal(t, "Requested by Kayu | 42", e.Footer.Text)

	got := map[string]string{}
	for _, f := range e.Fields {
		got[f.Name] = f.Value
	}
	assert.Equal(t, "12.3M", got["Experience"])
	assert.Equal(t, "9", got["Starbase"])
	assert.Equal(t, "2", got["Colonies"])
	assert.Equal(t, "12", got["Players Attacked"])
}

func TestAdvancedStats(t *testing.T) {
	svc := NewLookupService(seededGame())

	e, err := svc.AdvancedStats(context.Background(), "1001", asker)
	require.NoError(t, err)

	got := map[string]string{}
	for _, f := range e.Fields {
		got[f.Name] = f.Value
	}
	assert.Equal(t, "1.5M", got["Coins Spent"])
	assert.Equal(t, "1 hour", got["PlayTime"])
	assert.Equal(t, "51", got["Level"])
}

func TestAlliance(t *testing.T) {
	svc := NewLookupService(seededGame())

	e, err := svc.Alliance(context.Background(), "Stars")
	require.NoError(t, err)
	assert.Equal(t, "Stars", e.Title)
	assert.Contains(t, e.Description, "**Bob** (77)")
	assert.Contains(t, e.Thumbnail.URL, "flag_1_2_3.png")
	assert.Equal(t, "Run /members Stars to see its members.", e.Footer.Text)

	got := map[string]string{}
	for _, f := range e.Fields {
		got[f.Name] = f.Value
	}
	assert.Equal(t, "4", got["Members"])
	assert.Equal(t, "5", got["Wars Done"])

	_, err = svc.Alliance(context.Background(), "Nope")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "No alliance found for Nope", err.Error())
}

func TestMembers(t *testing.T) {
	svc := NewLookupService(seededGame())

	e, err := svc.Members(context.Background(), "Stars")
	require.NoError(t, err)
	require.Len(t, e.Fields, 3)
	assert.Equal(t, "Captains (1)", e.Fields[1].Name)
	assert.Contains(t, e.Fields[1].Value, "**Ann** (78)")
	assert.Equal(t, "Members (2)", e.Fields[2].Name)
	assert.Equal(t, "Cid, Dee", e.Fields[2].Value)
}

func TestLeaderboards(t *testing.T) {
	g := newFakeGame()
	g.xp = []domain.LeaderboardEntry{{Rank: 1, Name: "Kayu", Value: 25_430}}
	g.allyLb = []domain.LeaderboardEntry{{Rank: 1, Name: "Stars", Level: 7, Value: 1_234_567}}
	svc := NewLeaderboardService(g)

	base, lines, err := svc.Experience(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Experience Leaderboard", base.Title)
	assert.Equal(t, []string{"**#1** Kayu — 25.4K"}, lines)

	_, fields, err := svc.Alliances(context.Background())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "#1 Stars", fields[0].Name)
	assert.Equal(t, "Level 7 · 1,234,567 warpoints", fields[0].Value)

	g.xp = nil
	_, lines, err = svc.Experience(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Leaderboard is empty."}, lines)
}

func TestModeration(t *testing.T) {
	g := seededGame()
	svc := NewModerationService(g, zap.NewNop())

	msg, err := svc.Ban(context.Background(), "Bob", "", asker)
	require.NoError(t, err)
	assert.Equal(t, "No reason given", g.banned["77"])
	assert.Contains(t, msg, "has been banned")

	msg, err = svc.Unban(context.Background(), "77", asker)
	require.NoError(t, err)
	assert.Equal(t, []string{"77"}, g.unbanned)
	assert.Contains(t, msg, "has been unbanned")

	g.applied = false
	msg, err = svc.Ban(context.Background(), "Bob", "cheating", asker)
	require.NoError(t, err)
	assert.Contains(t, msg, "Failed to ban")

	_, err = svc.Ban(context.Background(), "ghost", "x", asker)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
