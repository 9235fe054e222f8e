package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

// Los leaderboards devuelven el embed base y el contenido a paginar; el
// paginador se encarga del título con la página y de los botones.
type LeaderboardService struct {
	gl LeaderboardAPI
}

func NewLeaderboardService(gl LeaderboardAPI) *LeaderboardService {
	return &LeaderboardService{gl: gl}
}

func (s *LeaderboardService) Experience(ctx context.Context) (*discordgo.MessageEmbed, []string, error) {
	entries, err := s.gl.GetXpLeaderboard(ctx)
	if err != nil {
		return nil, nil, err
	}
	lines := lo.Map(entries, func(e domain.LeaderboardEntry, _ int) string {
		return fmt.Sprintf("**#%d** %s — %s", e.Rank, e.Name, FormatNumber(e.Value))
	})
	base := &discordgo.MessageEmbed{
		Title: "Experience Leaderboard",
		Color: ColorPurple,
	}
	if len(lines) == 0 {
		lines = []string{"Leaderboard is empty."}
	}
	return base, lines, nil
}

func (s *LeaderboardService) Alliances(ctx context.Context) (*discordgo.MessageEmbed, []*discordgo.MessageEmbedField, error) {
	entries, err := s.gl.GetAllianceLeaderboard(ctx)
	if err != nil {
		return nil, nil, err
	}
	fields := lo.Map(entries, func(e domain.LeaderboardEntry, _ int) *discordgo.MessageEmbedField {
		return &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d %s", e.Rank, e.Name),
			Value: fmt.Sprintf("Level %d · %s warpoints", e.Level, humanize.Comma(e.Value)),
		}
	})
	base := &discordgo.MessageEmbed{
		Title: "Alliance Warpoints Leaderboard",
		Color: ColorDarkPurple,
	}
	if len(fields) == 0 {
		fields = []*discordgo.MessageEmbedField{{Name: "\u200b", Value: "Leaderboard is empty."}}
	}
	return base, fields, nil
}
