package service

import "fmt"

// NotFoundError es un "no existe" para mostrarle al usuario, no una falla.
type NotFoundError struct {
	Kind  string // user | alliance | server
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found for %s", e.Kind, e.Input)
}
