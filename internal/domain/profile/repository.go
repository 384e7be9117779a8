package profile

import (
	"context"
)

// Repository define a interface para operações de repositório de perfis
type Repository interface {
	// Create cria um novo perfil
	Create(ctx context.Context, p *Profile) error

	// FindByID busca um perfil pelo ID
	FindByID(ctx context.Context, id string) (*Profile, error)

	// FindByPIN busca o perfil mais recente com o PIN informado
	FindByPIN(ctx context.Context, pin string) (*Profile, error)

	// FindLatest retorna o perfil criado mais recentemente
	FindLatest(ctx context.Context) (*Profile, error)

	// UpdateStatus atualiza o status de um perfil
	UpdateStatus(ctx context.Context, id string, status Status) error
}
