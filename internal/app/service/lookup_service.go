package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

const emblemURL = "https://cdn.galaxylifegame.net/content/img/alliance_flag/AllianceLogos/flag_%d_%d_%d.png"

// Requester es quien ejecutó el comando (para el footer y el input por defecto).
type Requester struct {
	ID       string
	Username string
}

type LookupService struct {
	gl GameAPI
}

func NewLookupService(gl GameAPI) *LookupService {
	return &LookupService{gl: gl}
}

// ResolveUser busca por id y después por nombre. Sin input usa el username de quien pregunta.
func (s *LookupService) ResolveUser(ctx context.Context, input string, who Requester) (*domain.User, error) {
	return resolveUser(ctx, s.gl, input, who)
}

type userFinder interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByName(ctx context.Context, name string) (*domain.User, error)
}

func resolveUser(ctx context.Context, gl userFinder, input string, who Requester) (*domain.User, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		input = who.Username
	}

	u, err := gl.GetUserByID(ctx, input)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	u, err = gl.GetUserByName(ctx, input)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &NotFoundError{Kind: "user", Input: input}
	}
	return u, err
}

// Status arma el embed de servidores; filter (opcional) hace fuzzy match por nombre.
func (s *LookupService) Status(ctx context.Context, filter string) (*discordgo.MessageEmbed, error) {
	servers, err := s.gl.GetServerStatus(ctx)
	if err != nil {
		return nil, err
	}
	if filter = strings.TrimSpace(filter); filter != "" {
		servers = lo.Filter(servers, func(sv domain.ServerStatus, _ int) bool {
			return fuzzy.MatchFold(filter, sv.Name)
		})
		if len(servers) == 0 {
			return nil, &NotFoundError{Kind: "server", Input: filter}
		}
	}

	return StatusEmbed(servers), nil
}

// StatusEmbed: un field inline por servidor con su ping y estado.
func StatusEmbed(servers []domain.ServerStatus) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: "Server Status", Color: ColorBlue}
	for _, sv := range servers {
		state := "🛑 Down"
		if sv.IsOnline {
			state = "✅ Running"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%dms)", sv.Name, sv.Ping),
			Value:  state,
			Inline: true,
		})
	}
	return embed
}

func (s *LookupService) Profile(ctx context.Context, input string, who Requester) (*discordgo.MessageEmbed, error) {
	u, err := s.ResolveUser(ctx, input, who)
	if err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title:       "Game Profile of " + u.Name,
		URL:         u.Avatar,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: u.Avatar},
		Description: fmt.Sprintf("\nId: **%s**", u.ID),
	}, nil
}

func allianceLine(u *domain.User) string {
	if !u.InAlliance() {
		return "User is not in any alliance."
	}
	return fmt.Sprintf("User is part of **%s**.", u.AllianceID)
}

func statsHeader(u *domain.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Statistics for %s (%s)", u.Name, u.ID),
		Color:       ColorDarkMagenta,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: u.Avatar},
		Description: fmt.Sprintf("%s\nUser is level **%d**.\n\u200b", allianceLine(u), u.Level),
	}
}

func field(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func (s *LookupService) Stats(ctx context.Context, input string, who Requester) (*discordgo.MessageEmbed, error) {
	u, err := s.ResolveUser(ctx, input, who)
	if err != nil {
		return nil, err
	}
	st, err := s.gl.GetUserStats(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	embed := statsHeader(u)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Experience", FormatNumber(u.Experience)),
		field("Starbase", strconv.Itoa(u.StarbaseLevel())),
		field("Colonies", strconv.Itoa(u.Colonies())),
		field("Is Online", strconv.FormatBool(u.Online)),
		field("Players Attacked", itoa(st.PlayersAttacked)),
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Requested by %s | %s", who.Username, who.ID)}
	return embed, nil
}

func (s *LookupService) AdvancedStats(ctx context.Context, input string, who Requester) (*discordgo.MessageEmbed, error) {
	u, err := s.ResolveUser(ctx, input, who)
	if err != nil {
		return nil, err
	}
	st, err := s.gl.GetUserStats(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	embed := statsHeader(u)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Level", strconv.Itoa(u.Level)),
		field("Players Attacked", itoa(st.PlayersAttacked)),
		field("Npcs Attacked", itoa(st.NpcsAttacked)),
		field("Coins Spent", FormatNumber(st.CoinsSpent)),
		field("Minerals Spent", FormatNumber(st.MineralsSpent)),
		field("Friends Helped", FormatNumber(st.FriendsHelped)),
		field("Gifts Received", FormatNumber(st.GiftsReceived)),
		field("Gifts Sent", FormatNumber(st.GiftsSent)),
		field("PlayTime", HumanizeDuration(time.Duration(st.TotalPlayTimeInMs)*time.Millisecond)),
		field("Nukes Used", itoa(st.NukesUsed)),
		field("Obstacles Recycled", itoa(st.ObstaclesRecycled)),
		field("Troops trained", itoa(st.TroopsTrained)),
		field("Troopsize donated", itoa(st.TroopSizesDonated)),
	}
	return embed, nil
}

func (s *LookupService) getAlliance(ctx context.Context, input string) (*domain.Alliance, error) {
	input = strings.TrimSpace(input)
	a, err := s.gl.GetAlliance(ctx, input)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &NotFoundError{Kind: "alliance", Input: input}
	}
	return a, err
}

func ownerLine(a *domain.Alliance) string {
	owner, ok := lo.Find(a.Members, func(m domain.AllianceMember) bool { return m.Role == domain.RoleLeader })
	if !ok {
		return "*unknown*"
	}
	return fmt.Sprintf("**%s** (%s)", owner.Name, owner.ID)
}

func (s *LookupService) Alliance(ctx context.Context, input string) (*discordgo.MessageEmbed, error) {
	a, err := s.getAlliance(ctx, input)
	if err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title:       a.Name,
		Description: fmt.Sprintf("<:AFECounselor_Mobius:639094741631369247> Alliance owned by %s\n\u200b", ownerLine(a)),
		Color:       ColorDarkPurple,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: fmt.Sprintf(emblemURL, a.Emblem.Shape, a.Emblem.Pattern, a.Emblem.Icon)},
		Fields: []*discordgo.MessageEmbedField{
			field("Level", strconv.Itoa(a.AllianceLevel)),
			field("Members", strconv.Itoa(len(a.Members))),
			field("Warpoints", itoa(a.WarPoints)),
			field("Wars Done", strconv.Itoa(a.WarsWon+a.WarsLost)),
			field("Wars Won", strconv.Itoa(a.WarsWon)),
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Run /members %s to see its members.", strings.TrimSpace(input))},
	}, nil
}

func (s *LookupService) Members(ctx context.Context, input string) (*discordgo.MessageEmbed, error) {
	a, err := s.getAlliance(ctx, input)
	if err != nil {
		return nil, err
	}

	byRole := func(r domain.AllianceRole) []domain.AllianceMember {
		return lo.Filter(a.Members, func(m domain.AllianceMember, _ int) bool { return m.Role == r })
	}
	captains := byRole(domain.RoleAdmin)
	regulars := byRole(domain.RoleRegular)

	formattedCaptains := "None"
	if len(captains) > 0 {
		formattedCaptains = strings.Join(lo.Map(captains, func(m domain.AllianceMember, _ int) string {
			return fmt.Sprintf("**%s** (%s)", m.Name, m.ID)
		}), " | ")
	}
	formattedMembers := "None"
	if len(regulars) > 0 {
		formattedMembers = strings.Join(lo.Map(regulars, func(m domain.AllianceMember, _ int) string { return m.Name }), ", ")
	}

	return &discordgo.MessageEmbed{
		Title:     "Members of " + a.Name,
		Color:     ColorDarkGreen,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: fmt.Sprintf(emblemURL, a.Emblem.Shape, a.Emblem.Pattern, a.Emblem.Icon)},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Owner", Value: ownerLine(a) + "\n\u200b"},
			{Name: fmt.Sprintf("Captains (%d)", len(captains)), Value: truncateField(formattedCaptains + "\n\u200b")},
			{Name: fmt.Sprintf("Members (%d)", len(regulars)), Value: truncateField(formattedMembers)},
		},
	}, nil
}
