package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada sentinel es el "tipo"
// verificable por máquina; el detalle humano se agrega envolviendo con
// fmt.Errorf("%w: ...") y los handlers clasifican con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStorage            = errors.New("error de persistencia")

	// ErrSerialization lo emite el adaptador de persistencia cuando la transacción
	// falla por serialización o deadlock (40001/40P01). El caso de uso reintenta.
	ErrSerialization = errors.New("conflicto de serialización")
)
