package entity

import "errors"

// Domain error taxonomy. Callers classify failures with errors.Is; the HTTP
// layer maps each kind to a status code. Messages are wrapped around these
// sentinels with fmt.Errorf("%w: ...").
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
