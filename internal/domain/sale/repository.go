package sale

import (
	"context"
)

// Repository define a interface para operações de repositório de vendas.
// Todas as operações são delimitadas pelo perfil dono dos dados.
type Repository interface {
	// Create insere uma venda à vista
	Create(ctx context.Context, s *Sale) error

	// CreateDebt insere uma venda a crédito e incrementa a dívida do
	// cliente na mesma transação. Retorna o novo saldo do cliente.
	CreateDebt(ctx context.Context, s *Sale) (float64, error)

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, profileID, id string) (*Sale, error)

	// List lista as vendas de um perfil, da mais recente para a mais antiga
	List(ctx context.Context, profileID string, limit, offset int) ([]*Sale, error)

	// ListOpenByCustomer lista as dívidas em aberto de um cliente,
	// da mais recente para a mais antiga
	ListOpenByCustomer(ctx context.Context, profileID, customerID string) ([]*Sale, error)

	// CountByProfile conta quantas vendas existem para um perfil
	CountByProfile(ctx context.Context, profileID string) (int, error)

	// Delete remove uma venda. Se era uma dívida em aberto, o valor é
	// revertido do saldo do cliente na mesma transação (piso em zero).
	// Remover um ID inexistente não é erro.
	Delete(ctx context.Context, profileID, id string) error
}
