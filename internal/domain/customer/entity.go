package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// CriticalDebtThreshold marca a dívida a partir da qual o cliente é
// sinalizado como cobrança urgente
const CriticalDebtThreshold = 2500

// Customer representa um cliente (devedor) de um negócio
type Customer struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	TotalDebt float64   `json:"total_debt"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer cria um novo cliente sem dívida
func NewCustomer(profileID, name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		TotalDebt: 0,
		CreatedAt: time.Now(),
	}, nil
}

// HasDebt verifica se o cliente tem saldo devedor
func (c *Customer) HasDebt() bool {
	return c.TotalDebt > 0
}

// HasPhone verifica se o cliente tem telefone registado
func (c *Customer) HasPhone() bool {
	return c.Phone != ""
}

// IsCritical verifica se o saldo devedor atingiu o limite de cobrança
// urgente
func (c *Customer) IsCritical() bool {
	return c.TotalDebt >= CriticalDebtThreshold
}
