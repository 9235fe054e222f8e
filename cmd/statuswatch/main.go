package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jose-valero/galaxylife-bot/internal/adapters/galaxylife"
	"github.com/jose-valero/galaxylife-bot/internal/app/service"
	"github.com/jose-valero/galaxylife-bot/internal/domain"
	"github.com/jose-valero/galaxylife-bot/internal/infra/config"
	"github.com/jose-valero/galaxylife-bot/internal/infra/logging"
)

type statusSource interface {
	GetServerStatus(ctx context.Context) ([]domain.ServerStatus, error)
}

type webhookPoster interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// watcher consulta el estado de los servidores y avisa por webhook si alguno está caído.
type watcher struct {
	gl   statusSource
	hook webhookPoster
	cfg  config.StatusWatch
	log  *zap.Logger
	now  func() time.Time
}

func (w *watcher) handle(ctx context.Context, evt events.CloudWatchEvent) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	servers, err := w.gl.GetServerStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("status: %w", err)
	}
	down := lo.Filter(servers, func(s domain.ServerStatus, _ int) bool { return !s.IsOnline })
	w.log.Info("probe", zap.String("event", evt.ID), zap.Int("servers", len(servers)), zap.Int("down", len(down)))
	if len(down) == 0 {
		return "ok", nil
	}

	embed := service.StatusEmbed(servers)
	embed.Color = service.ColorRed
	embed.Description = "Down: " + strings.Join(lo.Map(down, func(s domain.ServerStatus, _ int) string { return s.Name }), ", ")
	embed.Timestamp = w.now().UTC().Format(time.RFC3339)

	if _, err := w.hook.WebhookExecute(w.cfg.WebhookID, w.cfg.WebhookToken, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("webhook: %w", err)
	}
	return fmt.Sprintf("alerted: %d down", len(down)), nil
}

func main() {
	cfg, err := config.LoadStatusWatch()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	// los webhooks no necesitan token de bot
	s, err := discordgo.New("")
	if err != nil {
		log.Fatalf("discord: %v", err)
	}

	w := &watcher{
		gl:   galaxylife.New(galaxylife.WithStatusURL(cfg.GLStatusURL)),
		hook: s,
		cfg:  cfg,
		log:  logger.Named("statuswatch"),
		now:  time.Now,
	}
	lambda.Start(w.handle)
}
