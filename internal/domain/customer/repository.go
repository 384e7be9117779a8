package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes.
// Todas as operações são delimitadas pelo perfil dono dos dados.
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, profileID, id string) (*Customer, error)

	// List lista os clientes de um perfil, ordenados por nome
	List(ctx context.Context, profileID string) ([]*Customer, error)

	// FindByName busca clientes pelo nome (busca parcial, sem distinção de caixa)
	FindByName(ctx context.Context, profileID, name string) ([]*Customer, error)

	// ListDebtors lista os clientes com dívida em aberto, da maior para a menor
	ListDebtors(ctx context.Context, profileID string, limit int) ([]*Customer, error)

	// RecordPayment abate o valor recebido da dívida do cliente,
	// nunca deixando o saldo negativo. Retorna o novo saldo.
	RecordPayment(ctx context.Context, profileID, id string, amount float64) (float64, error)

	// Delete remove um cliente. As vendas que o referenciam ficam
	// com a referência anulada (ON DELETE SET NULL no banco).
	Delete(ctx context.Context, profileID, id string) error
}
