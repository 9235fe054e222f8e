package paginator

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Tokens de navegación (el custom_id del botón es "pager:<token>").
const (
	TokenFirst    = "first"
	TokenPrevious = "previous"
	TokenNext     = "next"
	TokenLast     = "last"

	customIDPrefix = "pager:"
)

var errUnknownToken = errors.New("paginator: unknown navigation token")

func CustomID(token string) string { return customIDPrefix + token }

// ParseCustomID devuelve el token si el custom_id es de un botón del paginador.
func ParseCustomID(customID string) (string, bool) {
	if !strings.HasPrefix(customID, customIDPrefix) {
		return "", false
	}
	return strings.TrimPrefix(customID, customIDPrefix), true
}

// targetPage: first→1, last→total, next/previous saturan en los bordes.
func targetPage(token string, current, total int) (int, bool) {
	switch token {
	case TokenFirst:
		return 1, true
	case TokenLast:
		return total, true
	case TokenNext:
		return min(current+1, total), true
	case TokenPrevious:
		return max(current-1, 1), true
	}
	return 0, false
}

// Navigate aplica token a la sesión de messageID. Sin sesión o token
// desconocido devuelve (false, nil). Si el edit falla la página no cambia.
func (p *Paginator) Navigate(ctx context.Context, messageID, token string) (bool, error) {
	err := p.store.Update(messageID, func(s *Session) error {
		target, ok := targetPage(token, s.CurrentPage, s.TotalPages())
		if !ok {
			return errUnknownToken
		}

		// todo click reinicia la cuenta, también los que no cambian de página
		if !p.expiry.Reset(messageID) {
			p.expiry.Start(messageID, p.timeout)
		}

		if target == s.CurrentPage {
			return nil
		}
		next := *s
		next.CurrentPage = target
		if err := p.edit(ctx, &next, false); err != nil {
			return err
		}
		s.CurrentPage = target
		return nil
	})

	switch {
	case errors.Is(err, ErrNoSession), errors.Is(err, errUnknownToken):
		return false, nil
	case err != nil:
		p.log.Warn("paginator render failed", zap.String("message", messageID), zap.String("token", token), zap.Error(err))
		return true, err
	}
	return true, nil
}
