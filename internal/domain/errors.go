package domain

import "errors"

// ErrNotFound lo devuelven los adapters cuando la API no conoce al usuario/alianza.
var ErrNotFound = errors.New("not found")
