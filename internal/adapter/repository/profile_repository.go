package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dividazero/dividazero-api/internal/domain/profile"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProfileNotFound = errors.New("perfil não encontrado")
)

// ProfileRepository implementa a interface profile.Repository
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository cria uma nova instância de ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) profile.Repository {
	return &ProfileRepository{db: db}
}

// Create implementa profile.Repository.Create
func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, business_name, pin, phone, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.BusinessName, p.PIN, p.Phone, p.Status, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar perfil: %w", err)
	}
	return nil
}

// FindByID implementa profile.Repository.FindByID
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	return r.findOne(ctx,
		`SELECT id, business_name, pin, phone, status, created_at
		 FROM profiles WHERE id = $1`, id)
}

// FindByPIN implementa profile.Repository.FindByPIN. Como o PIN é um
// segredo partilhado que pode se repetir entre contas, vale o perfil
// criado mais recentemente.
func (r *ProfileRepository) FindByPIN(ctx context.Context, pin string) (*profile.Profile, error) {
	return r.findOne(ctx,
		`SELECT id, business_name, pin, phone, status, created_at
		 FROM profiles WHERE pin = $1
		 ORDER BY created_at DESC LIMIT 1`, pin)
}

// FindLatest implementa profile.Repository.FindLatest
func (r *ProfileRepository) FindLatest(ctx context.Context) (*profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_name, pin, phone, status, created_at
		 FROM profiles ORDER BY created_at DESC LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrProfileNotFound
	}
	return scanProfile(rows)
}

// UpdateStatus implementa profile.Repository.UpdateStatus
func (r *ProfileRepository) UpdateStatus(ctx context.Context, id string, status profile.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE profiles SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do perfil: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) findOne(ctx context.Context, query string, args ...interface{}) (*profile.Profile, error) {
	var p profile.Profile
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.BusinessName, &p.PIN, &p.Phone, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("erro ao buscar perfil: %w", err)
	}
	return &p, nil
}

func scanProfile(rows pgx.Rows) (*profile.Profile, error) {
	var p profile.Profile
	if err := rows.Scan(&p.ID, &p.BusinessName, &p.PIN, &p.Phone, &p.Status, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao ler perfil: %w", err)
	}
	return &p, nil
}
