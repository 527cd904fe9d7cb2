package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrAssetNotFound     = errors.New("asset no encontrado")
	ErrRequestNotFound   = errors.New("solicitud no encontrada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidID         = errors.New("id con formato inválido")
	ErrMissingFields     = errors.New("faltan campos requeridos")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
