package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/internal/domain/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, profile_id, name, COALESCE(phone, ''), total_debt, created_at`

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (id, profile_id, name, phone, total_debt, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		c.ID, c.ProfileID, c.Name, c.Phone, c.TotalDebt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, profileID, id string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE id = $1 AND profile_id = $2`,
		id, profileID).Scan(&c.ID, &c.ProfileID, &c.Name, &c.Phone, &c.TotalDebt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, profileID string) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE profile_id = $1
		 ORDER BY name ASC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, profileID, name string) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE profile_id = $1 AND name ILIKE $2
		 ORDER BY name ASC`,
		profileID, "%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// ListDebtors implementa customer.Repository.ListDebtors
func (r *CustomerRepository) ListDebtors(ctx context.Context, profileID string, limit int) ([]*customer.Customer, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE profile_id = $1 AND total_debt > 0
		 ORDER BY total_debt DESC
		 LIMIT $2`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar devedores: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// RecordPayment implementa customer.Repository.RecordPayment. O saldo
// atual é lido com bloqueio de linha e o novo valor é calculado pelas
// regras do caderno, tudo na mesma transação: ou o pagamento inteiro
// entra, ou nada muda.
func (r *CustomerRepository) RecordPayment(ctx context.Context, profileID, id string, amount float64) (float64, error) {
	if err := ledger.ValidateAmount(amount); err != nil {
		return 0, err
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
		id, profileID).Scan(&currentDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCustomerNotFound
		}
		return 0, fmt.Errorf("erro ao buscar saldo do cliente: %w", err)
	}

	newDebt := ledger.ApplyPayment(currentDebt, amount)
	_, err = tx.Exec(ctx,
		`UPDATE customers SET total_debt = $1 WHERE id = $2 AND profile_id = $3`,
		newDebt, id, profileID)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar saldo do cliente: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("erro ao confirmar pagamento: %w", err)
	}
	return newDebt, nil
}

// Delete implementa customer.Repository.Delete. As vendas que
// referenciam o cliente ficam com customer_id nulo via chave
// estrangeira ON DELETE SET NULL.
func (r *CustomerRepository) Delete(ctx context.Context, profileID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM customers WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Phone, &c.TotalDebt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}
	return customers, nil
}
