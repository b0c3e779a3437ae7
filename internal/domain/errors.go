package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Taxonomía del gateway CRM: validación, conflicto referencial, auth y fallo de backend.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto: el registro tiene dependientes")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrInvalidToken = errors.New("token inválido")
	ErrTokenExpired = errors.New("token expirado")
	ErrBackend      = errors.New("fallo del backend CRM")
)
