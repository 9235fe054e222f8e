package discord

import "github.com/bwmarrin/discordgo"

func userOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "input",
		Description: "Username or id (defaults to yours)",
		Required:    required,
	}
}

func allianceOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "input",
		Description: "Alliance name",
		Required:    true,
	}
}

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "Checks that the bot is alive",
	},
	{
		Name:        "status",
		Description: "Shows the current status of the flash servers",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "server",
			Description: "Filter by server name",
		}},
	},
	{
		Name:        "profile",
		Description: "Displays a user's Galaxy Life profile",
		Options:     []*discordgo.ApplicationCommandOption{userOption(false)},
	},
	{
		Name:        "stats",
		Description: "Displays a user's Galaxy Life stats",
		Options:     []*discordgo.ApplicationCommandOption{userOption(false)},
	},
	{
		Name:        "advancedstats",
		Description: "Displays a user's extensive Galaxy Life stats",
		Options:     []*discordgo.ApplicationCommandOption{userOption(false)},
	},
	{
		Name:        "as",
		Description: "Displays a user's extensive Galaxy Life stats",
		Options:     []*discordgo.ApplicationCommandOption{userOption(false)},
	},
	{
		Name:        "alliance",
		Description: "Displays basic info about an alliance",
		Options:     []*discordgo.ApplicationCommandOption{allianceOption()},
	},
	{
		Name:        "members",
		Description: "Displays the members of an alliance",
		Options:     []*discordgo.ApplicationCommandOption{allianceOption()},
	},
	{
		Name:        "leaderboard",
		Description: "Shows the Galaxy Life leaderboards",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "xp", Description: "Top players by experience"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "alliances", Description: "Top alliances by warpoints"},
		},
	},
	{
		Name:        "ban",
		Description: "Bans a user from the game (staff only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "user", Description: "Username or id", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "reason", Description: "Why the user is banned"},
		},
	},
	{
		Name:        "unban",
		Description: "Unbans a user from the game (staff only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "user", Description: "Username or id", Required: true},
		},
	},
}
