package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/galaxylife-bot/internal/app/service"
)

// DefaultAllowedUserIDs es la allow-list de staff si no se configura ALLOWED_USER_IDS.
var DefaultAllowedUserIDs = []string{
	"202095042372829184",
	"942849642931032164",
	"209801906237865984",
	"362271714702262273",
	"180676108088246272",
	"275698828974489612",
}

func (r *Router) isAllowed(userID string) bool {
	_, ok := r.allowed[userID]
	return ok
}

// requireAllowed responde el rechazo (la interacción ya está diferida).
func (r *Router) requireAllowed(ic *discordgo.InteractionCreate, who service.Requester) bool {
	if r.isAllowed(who.ID) {
		return true
	}
	r.log.Info("permission denied", zap.String("by", who.ID), zap.String("cmd", ic.ApplicationCommandData().Name))
	r.replyText(ic, fmt.Sprintf("%s has no permission to execute this command!", who.Username))
	return false
}
