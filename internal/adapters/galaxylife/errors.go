package galaxylife

import (
	"fmt"

	"github.com/jose-valero/galaxylife-bot/internal/domain"
)

// ErrNotFound: 404 o cuerpo vacío/"null" (la API hace las dos cosas según el endpoint).
var ErrNotFound = domain.ErrNotFound

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("galaxylife api status %d: %s", e.Status, e.Body)
}
