package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/galaxylife-bot/internal/app/service"
	"github.com/jose-valero/galaxylife-bot/internal/paginator"
)

// Responder es lo que los handlers usan de *discordgo.Session.
type Responder interface {
	paginator.Messenger
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Responder = (*discordgo.Session)(nil)

type Router struct {
	s       *discordgo.Session
	rs      Responder
	log     *zap.Logger
	guildID string

	lookup      *service.LookupService
	leaderboard *service.LeaderboardService
	moderation  *service.ModerationService
	pager       *paginator.Paginator

	allowed      map[string]struct{}
	clickLimiter *userLimiter
}

func NewRouter(
	s *discordgo.Session,
	log *zap.Logger,
	guildID string,
	allowedUserIDs []string,
	lookup *service.LookupService,
	leaderboard *service.LeaderboardService,
	moderation *service.ModerationService,
	pager *paginator.Paginator,
) *Router {
	r := newRouter(s, log, allowedUserIDs, lookup, leaderboard, moderation, pager)
	r.s = s
	r.guildID = guildID
	return r
}

func newRouter(
	rs Responder,
	log *zap.Logger,
	allowedUserIDs []string,
	lookup *service.LookupService,
	leaderboard *service.LeaderboardService,
	moderation *service.ModerationService,
	pager *paginator.Paginator,
) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = struct{}{}
	}
	return &Router{
		rs:           rs,
		log:          log.Named("discord"),
		lookup:       lookup,
		leaderboard:  leaderboard,
		moderation:   moderation,
		pager:        pager,
		allowed:      allowed,
		clickLimiter: newUserLimiter(4, 4),
	}
}

// Register crea los slash commands. Sin guildID quedan globales.
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return fmt.Errorf("register /%s: %w", cmd.Name, err)
		}
	}
	r.log.Info("commands registered", zap.Int("count", len(Commands)), zap.String("guild", r.guildID))
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		r.log.Info("ready", zap.String("user", ready.User.Username), zap.Int("guilds", len(ready.Guilds)))
	})
	r.s.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		r.onInteraction(ic)
	})
}

func (r *Router) onInteraction(ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		r.handleSlashCommand(ic)
	case discordgo.InteractionMessageComponent:
		r.handleMessageComponent(ic)
	}
}

// requester saca el usuario del Member (guild) o del User (DM).
func requester(ic *discordgo.InteractionCreate) service.Requester {
	u := ic.User
	if ic.Member != nil && ic.Member.User != nil {
		u = ic.Member.User
	}
	if u == nil {
		return service.Requester{}
	}
	return service.Requester{ID: u.ID, Username: u.Username}
}

const (
	slashTimeout     = 12 * time.Second
	componentTimeout = 8 * time.Second
)
