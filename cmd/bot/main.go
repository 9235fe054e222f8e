package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	discordrouter "github.com/jose-valero/galaxylife-bot/internal/adapters/discord"
	"github.com/jose-valero/galaxylife-bot/internal/adapters/galaxylife"
	"github.com/jose-valero/galaxylife-bot/internal/adapters/httpapi"
	"github.com/jose-valero/galaxylife-bot/internal/app/service"
	"github.com/jose-valero/galaxylife-bot/internal/infra/config"
	"github.com/jose-valero/galaxylife-bot/internal/infra/logging"
	"github.com/jose-valero/galaxylife-bot/internal/paginator"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	discordrouter.BridgeLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// cliente de la API del juego
	gl := galaxylife.New(
		galaxylife.WithBaseURL(cfg.GLAPIURL),
		galaxylife.WithStatusURL(cfg.GLStatusURL),
		galaxylife.WithStaffToken(cfg.GLStaffToken),
		galaxylife.WithRateLimit(cfg.GLAPIRPS, 5),
	)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		logger.Fatal("discord session", zap.Error(err))
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		logger.Fatal("discord open", zap.Error(err))
	}
	defer s.Close()
	logger.Info("connected", zap.String("user", s.State.User.Username), zap.String("id", s.State.User.ID))

	// Paginador (una goroutine para todos los vencimientos)
	pager := paginator.New(s, logger, cfg.PaginatorTimeout)
	go pager.Run(ctx)
	defer pager.Shutdown()

	// Services
	lookupSvc := service.NewLookupService(gl)
	leaderboardSvc := service.NewLeaderboardService(gl)
	moderationSvc := service.NewModerationService(gl, logger)

	allowed := cfg.AllowedUserIDs
	if len(allowed) == 0 {
		allowed = discordrouter.DefaultAllowedUserIDs
	}

	// Router
	r := discordrouter.NewRouter(s, logger, cfg.DiscordGuild, allowed, lookupSvc, leaderboardSvc, moderationSvc, pager)
	if err := r.Register(); err != nil {
		logger.Fatal("register commands", zap.Error(err))
	}
	r.Handlers()

	// health
	web := httpapi.New(pager, logger)
	go func() {
		if err := web.Start(cfg.HTTPAddr); err != nil {
			logger.Error("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", zap.Int("active_paginators", pager.Active()))

	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = web.Shutdown(sctx)
}
