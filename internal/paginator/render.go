package paginator

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// colorDarkBlue es el color si el embed original no traía uno.
const colorDarkBlue = 0x206694

// Render arma el embed de la página actual y la fila de botones. Sin botones
// si hay una sola página; todos deshabilitados si disabled.
func Render(s *Session, disabled bool) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	base := s.Base
	if base == nil {
		base = &discordgo.MessageEmbed{}
	}

	color := base.Color
	if color == 0 {
		color = colorDarkBlue
	}
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s (Page %d)", base.Title, s.CurrentPage),
		URL:   base.URL,
		Color: color,
	}
	if base.Thumbnail != nil {
		th := *base.Thumbnail
		embed.Thumbnail = &th
	}
	if base.Footer != nil {
		f := *base.Footer
		embed.Footer = &f
	}
	if base.Timestamp != "" {
		embed.Timestamp = time.Now().Format(time.RFC3339)
	}

	if s.Content.Fields != nil {
		embed.Fields = append([]*discordgo.MessageEmbedField(nil), s.pageFields()...)
	} else {
		embed.Description = strings.Join(s.pageLines(), "\n")
	}

	comps := []discordgo.MessageComponent{}
	if s.TotalPages() > 1 {
		comps = append(comps, navRow(disabled))
	}
	return embed, comps
}

func navRow(disabled bool) discordgo.ActionsRow {
	btn := func(label, token, emoji string) discordgo.Button {
		return discordgo.Button{
			Label:    label,
			Style:    discordgo.SecondaryButton,
			CustomID: CustomID(token),
			Emoji:    &discordgo.ComponentEmoji{Name: emoji},
			Disabled: disabled,
		}
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			btn("First", TokenFirst, "⏮️"),
			btn("Previous", TokenPrevious, "⬅️"),
			btn("Next", TokenNext, "➡️"),
			btn("Last", TokenLast, "⏭️"),
		},
	}
}
