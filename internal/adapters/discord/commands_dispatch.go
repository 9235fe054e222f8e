// despacho de InteractionApplicationCommand: leer opciones, llamar al servicio y editar la respuesta
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/galaxylife-bot/internal/app/service"
	"github.com/jose-valero/galaxylife-bot/internal/paginator"
)

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	who := requester(ic)
	log := r.log.With(zap.String("cmd", cmd.Name), zap.String("by", who.ID), zap.String("guild", ic.GuildID))
	log.Info("slash")

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic in slash command", zap.Any("panic", rec), zap.Stack("stack"))
			r.replyText(ic, "❌ Something went wrong while running this command.")
		}
	}()
	defer r.step("cmd." + cmd.Name)()

	_ = r.deferPublic(ic)
	ctx, cancel := context.WithTimeout(context.Background(), slashTimeout)
	defer cancel()

	switch cmd.Name {
	case "ping":
		r.replyText(ic, "🏓 Pong!")

	case "status":
		filter, _ := optStr(ic, "server")
		embed, err := r.lookup.Status(ctx, filter)
		r.replyResult(ic, embed, err)

	case "profile":
		input, _ := optStr(ic, "input")
		embed, err := r.lookup.Profile(ctx, input, who)
		r.replyResult(ic, embed, err)

	case "stats":
		input, _ := optStr(ic, "input")
		embed, err := r.lookup.Stats(ctx, input, who)
		r.replyResult(ic, embed, err)

	case "advancedstats", "as":
		input, _ := optStr(ic, "input")
		embed, err := r.lookup.AdvancedStats(ctx, input, who)
		r.replyResult(ic, embed, err)

	case "alliance":
		input, _ := optStr(ic, "input")
		embed, err := r.lookup.Alliance(ctx, input)
		r.replyResult(ic, embed, err)

	case "members":
		input, _ := optStr(ic, "input")
		embed, err := r.lookup.Members(ctx, input)
		r.replyResult(ic, embed, err)

	case "leaderboard":
		sub, _ := subcmdName(ic)
		r.sendLeaderboard(ctx, ic, sub, who)

	case "ban":
		if !r.requireAllowed(ic, who) {
			return
		}
		user, _ := optStr(ic, "user")
		reason, _ := optStr(ic, "reason")
		msg, err := r.moderation.Ban(ctx, user, reason, who)
		r.replyMessage(ic, msg, err)

	case "unban":
		if !r.requireAllowed(ic, who) {
			return
		}
		user, _ := optStr(ic, "user")
		msg, err := r.moderation.Unban(ctx, user, who)
		r.replyMessage(ic, msg, err)

	default:
		r.replyText(ic, "Unknown command.")
	}
}

func (r *Router) sendLeaderboard(ctx context.Context, ic *discordgo.InteractionCreate, sub string, who service.Requester) {
	var (
		base    *discordgo.MessageEmbed
		content paginator.Content
		err     error
	)
	switch sub {
	case "xp":
		var lines []string
		base, lines, err = r.leaderboard.Experience(ctx)
		content = paginator.Lines(lines)
	case "alliances":
		var fields []*discordgo.MessageEmbedField
		base, fields, err = r.leaderboard.Alliances(ctx)
		content = paginator.Fields(fields)
	default:
		r.replyText(ic, "Use `/leaderboard xp` or `/leaderboard alliances`.")
		return
	}
	if err != nil {
		r.replyResult(ic, nil, err)
		return
	}
	if err := r.pager.Send(ctx, ic.Interaction, who.ID, base, content); err != nil {
		r.log.Error("paginator send failed", zap.String("leaderboard", sub), zap.Error(err))
		r.replyText(ic, "⚠️ Could not display the leaderboard.")
	}
}
