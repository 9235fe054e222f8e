// Package paginator mantiene en memoria los mensajes paginados: la página
// actual de cada mensaje, los botones de navegación y la expiración por
// inactividad.
package paginator

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// PageSize es la cantidad de líneas o fields por página.
const PageSize = 10

var (
	ErrNoSession     = errors.New("paginator: no session for message")
	ErrSessionExists = errors.New("paginator: session already exists for message")
	ErrMixedContent  = errors.New("paginator: content must be lines or fields, not both")
)

// Content es lo que se pagina: líneas (van a la description) o fields, nunca ambos.
type Content struct {
	Lines  []string
	Fields []*discordgo.MessageEmbedField
}

func Lines(lines []string) Content { return Content{Lines: lines} }

func Fields(fields []*discordgo.MessageEmbedField) Content { return Content{Fields: fields} }

func (c Content) validate() error {
	if c.Lines != nil && c.Fields != nil {
		return ErrMixedContent
	}
	return nil
}

func (c Content) len() int {
	if c.Fields != nil {
		return len(c.Fields)
	}
	return len(c.Lines)
}

type Session struct {
	MessageID   string
	ChannelID   string
	OwnerID     string
	CurrentPage int
	Content     Content
	// Base aporta title/color/footer/thumbnail del mensaje original.
	Base *discordgo.MessageEmbed
}

// TotalPages nunca es menor que 1, aunque no haya contenido.
func (s *Session) TotalPages() int {
	n := s.Content.len()
	if n == 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

func pageBounds(page, total int) (int, int) {
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

func (s *Session) pageLines() []string {
	start, end := pageBounds(s.CurrentPage, len(s.Content.Lines))
	return s.Content.Lines[start:end]
}

func (s *Session) pageFields() []*discordgo.MessageEmbedField {
	start, end := pageBounds(s.CurrentPage, len(s.Content.Fields))
	return s.Content.Fields[start:end]
}
