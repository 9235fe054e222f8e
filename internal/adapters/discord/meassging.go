package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/galaxylife-bot/internal/app/service"
)

// deferPublic: todas las respuestas son públicas y se completan editando el original.
func (r *Router) deferPublic(ic *discordgo.InteractionCreate) error {
	err := r.rs.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		r.log.Warn("defer failed", zap.Error(err))
	}
	return err
}

func (r *Router) editOriginal(ic *discordgo.InteractionCreate, params *discordgo.WebhookEdit) {
	_, err := r.rs.InteractionResponseEdit(ic.Interaction, params)
	if err == nil {
		return
	}
	// webhook desconocido: no llegamos a diferir, mandamos un followup
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownWebhook {
		fp := &discordgo.WebhookParams{}
		if params.Content != nil {
			fp.Content = *params.Content
		}
		if params.Embeds != nil {
			fp.Embeds = *params.Embeds
		}
		if _, err = r.rs.FollowupMessageCreate(ic.Interaction, true, fp); err == nil {
			return
		}
	}
	r.log.Warn("edit original failed", zap.Error(err))
}

func (r *Router) replyText(ic *discordgo.InteractionCreate, content string) {
	r.editOriginal(ic, &discordgo.WebhookEdit{Content: &content})
}

func (r *Router) replyEmbed(ic *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	embeds := []*discordgo.MessageEmbed{embed}
	r.editOriginal(ic, &discordgo.WebhookEdit{Embeds: &embeds})
}

// replyResult muestra el embed o traduce el error a un mensaje para el usuario.
func (r *Router) replyResult(ic *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, err error) {
	if err != nil {
		r.replyText(ic, r.userMessage(err))
		return
	}
	r.replyEmbed(ic, embed)
}

func (r *Router) replyMessage(ic *discordgo.InteractionCreate, msg string, err error) {
	if err != nil {
		msg = r.userMessage(err)
	}
	r.replyText(ic, msg)
}

func (r *Router) userMessage(err error) string {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	r.log.Error("command failed", zap.Error(err))
	return "⚠️ Could not reach the Galaxy Life API, try again later."
}
