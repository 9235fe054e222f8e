package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (r *Router) handleMessageComponent(ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	who := requester(ic)

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic in component", zap.String("custom_id", data.CustomID), zap.Any("panic", rec))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), componentTimeout)
	defer cancel()

	// los clicks de más se acusan igual para no dejar la interacción colgada
	if !r.clickLimiter.Allow(who.ID) {
		r.log.Debug("click throttled", zap.String("by", who.ID))
		_ = r.rs.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		}, discordgo.WithContext(ctx))
		return
	}

	defer r.step("component.pager")()
	handled, err := r.pager.HandleComponent(ctx, ic)
	if err != nil {
		r.log.Warn("pager navigation failed",
			zap.String("custom_id", data.CustomID),
			zap.String("message", ic.Message.ID),
			zap.Error(err))
		return
	}
	if !handled {
		r.log.Debug("unknown component", zap.String("custom_id", data.CustomID))
	}
}
