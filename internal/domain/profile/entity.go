package profile

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBusinessName = errors.New("nome do negócio não pode ser vazio")
	ErrInvalidPIN        = errors.New("PIN deve ter 6 dígitos")
)

// Status representa o estado da conta
type Status string

const (
	StatusTrial   Status = "trial"
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// Profile representa um negócio (tenant) no sistema
type Profile struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	PIN          string    `json:"-"`
	Phone        string    `json:"phone"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewProfile cria um novo perfil de negócio
func NewProfile(businessName, pin, phone string) (*Profile, error) {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return nil, ErrEmptyBusinessName
	}
	if !pinPattern.MatchString(pin) {
		return nil, ErrInvalidPIN
	}

	return &Profile{
		ID:           uuid.New().String(),
		BusinessName: businessName,
		PIN:          pin,
		Phone:        phone,
		Status:       StatusTrial,
		CreatedAt:    time.Now(),
	}, nil
}

// IsBlocked verifica se a conta está bloqueada
func (p *Profile) IsBlocked() bool {
	return p.Status == StatusBlocked
}

// Activate ativa a conta
func (p *Profile) Activate() {
	p.Status = StatusActive
}

// Block bloqueia a conta
func (p *Profile) Block() {
	p.Status = StatusBlocked
}
