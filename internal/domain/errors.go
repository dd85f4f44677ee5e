package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinelas entre repositorios y casos de uso (sin mensaje para el cliente).
var (
	ErrDuplicate = errors.New("recurso duplicado")
	ErrNotFound  = errors.New("recurso no encontrado")
)

// Kind clasifica un error de la aplicación. El normalizador HTTP hace match
// exhaustivo sobre este tipo; cualquier error sin Kind termina en 500.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnprocessable
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInternal
)

// Error error de aplicación con clase explícita y mensaje legible para el cliente.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// StatusCode devuelve el status HTTP asociado a la clase del error.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest error 400 (parámetros inválidos).
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unprocessable error 422 (campos requeridos ausentes).
func Unprocessable(format string, args ...any) *Error {
	return &Error{Kind: KindUnprocessable, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized error 401 (credenciales o token inválidos).
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NotFound error 404.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict error 409 (unicidad o integridad referencial).
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}
