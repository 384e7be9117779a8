package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dividazero/dividazero-api/internal/domain/ledger"
	"github.com/dividazero/dividazero-api/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

const saleColumns = `id, profile_id, amount, type, COALESCE(customer_id::text, ''), COALESCE(description, ''), date, paid`

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (id, profile_id, amount, type, customer_id, description, date, paid)
		 VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, ''), $7, $8)`,
		s.ID, s.ProfileID, s.Amount, s.Type, s.CustomerID, s.Description, s.Date, s.Paid)
	if err != nil {
		return fmt.Errorf("erro ao registar venda: %w", err)
	}
	return nil
}

// CreateDebt implementa sale.Repository.CreateDebt. A inserção da venda
// e o incremento do saldo do cliente acontecem na mesma transação: não
// existe estado intermediário em que a venda exista sem o saldo
// correspondente.
func (r *SaleRepository) CreateDebt(ctx context.Context, s *sale.Sale) (float64, error) {
	if !s.IsOpenDebt() {
		return 0, sale.ErrMissingCustomer
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var currentDebt float64
	err = tx.QueryRow(ctx,
		`SELECT total_debt FROM customers
		 WHERE id = $1 AND profile_id = $2
		 FOR UPDATE`,
		s.CustomerID, s.ProfileID).Scan(&currentDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCustomerNotFound
		}
		return 0, fmt.Errorf("erro ao buscar saldo do cliente: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (id, profile_id, amount, type, customer_id, description, date, paid)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`,
		s.ID, s.ProfileID, s.Amount, s.Type, s.CustomerID, s.Description, s.Date, s.Paid)
	if err != nil {
		return 0, fmt.Errorf("erro ao registar venda: %w", err)
	}

	newDebt := ledger.ApplyDebtSale(currentDebt, s.Amount)
	_, err = tx.Exec(ctx,
		`UPDATE customers SET total_debt = $1 WHERE id = $2 AND profile_id = $3`,
		newDebt, s.CustomerID, s.ProfileID)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar saldo do cliente: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("erro ao confirmar venda: %w", err)
	}
	return newDebt, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, profileID, id string) (*sale.Sale, error) {
	var s sale.Sale
	err := r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales
		 WHERE id = $1 AND profile_id = $2`,
		id, profileID).Scan(&s.ID, &s.ProfileID, &s.Amount, &s.Type, &s.CustomerID, &s.Description, &s.Date, &s.Paid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, profileID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		 WHERE profile_id = $1
		 ORDER BY date DESC
		 LIMIT $2 OFFSET $3`,
		profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(rows)
}

// ListOpenByCustomer implementa sale.Repository.ListOpenByCustomer
func (r *SaleRepository) ListOpenByCustomer(ctx context.Context, profileID, customerID string) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		 WHERE profile_id = $1 AND customer_id = $2 AND type = $3 AND paid = false
		 ORDER BY date DESC`,
		profileID, customerID, sale.TypeDebt)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar dívidas do cliente: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(rows)
}

// CountByProfile implementa sale.Repository.CountByProfile
func (r *SaleRepository) CountByProfile(ctx context.Context, profileID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE profile_id = $1`, profileID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

// Delete implementa sale.Repository.Delete. Dívidas em aberto têm o
// valor revertido do saldo do cliente na mesma transação, com piso em
// zero. Se o cliente já foi removido, a reversão é simplesmente
// ignorada. Remover um ID já ausente é um no-op.
func (r *SaleRepository) Delete(ctx context.Context, profileID, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var s sale.Sale
	err = tx.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales
		 WHERE id = $1 AND profile_id = $2
		 FOR UPDATE`,
		id, profileID).Scan(&s.ID, &s.ProfileID, &s.Amount, &s.Type, &s.CustomerID, &s.Description, &s.Date, &s.Paid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// já removida: segunda invocação não é erro
			return nil
		}
		return fmt.Errorf("erro ao buscar venda: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM sales WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}

	if s.IsOpenDebt() {
		var currentDebt float64
		err = tx.QueryRow(ctx,
			`SELECT total_debt FROM customers
			 WHERE id = $1 AND profile_id = $2
			 FOR UPDATE`,
			s.CustomerID, s.ProfileID).Scan(&currentDebt)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("erro ao buscar saldo do cliente: %w", err)
			}
			// cliente já removido: nada a reverter
		} else {
			newDebt := ledger.ReverseSale(currentDebt, s.Amount)
			_, err = tx.Exec(ctx,
				`UPDATE customers SET total_debt = $1 WHERE id = $2 AND profile_id = $3`,
				newDebt, s.CustomerID, s.ProfileID)
			if err != nil {
				return fmt.Errorf("erro ao reverter saldo do cliente: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar remoção: %w", err)
	}
	return nil
}

func (r *SaleRepository) scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Amount, &s.Type, &s.CustomerID, &s.Description, &s.Date, &s.Paid); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}
	return sales, nil
}
