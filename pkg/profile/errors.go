package profile

import "errors"

// ErrProfileNotSpecified ocorre quando a requisição chega sem perfil autenticado
var ErrProfileNotSpecified = errors.New("perfil não especificado")
