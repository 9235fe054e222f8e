package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// optStr busca la opción en el comando o dentro del subcomando.
func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return strings.TrimSpace(o.StringValue()), true
		}
		// subcommand
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			for _, so := range o.Options {
				if so.Name == name && so.Type == discordgo.ApplicationCommandOptionString {
					return strings.TrimSpace(so.StringValue()), true
				}
			}
		}
	}
	return "", false
}

func subcmdName(ic *discordgo.InteractionCreate) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			return o.Name, true
		}
	}
	return "", false
}
