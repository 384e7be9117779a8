package sale

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("valor deve ser um número positivo")
	ErrMissingCustomer = errors.New("venda a crédito exige um cliente")
)

// Type define a forma da venda: à vista ou a crédito (fiado)
type Type string

const (
	TypeCash Type = "dinheiro"
	TypeDebt Type = "divida"
)

// Sale representa uma venda registada por um negócio
type Sale struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Amount      float64   `json:"amount"`
	Type        Type      `json:"type"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Paid        bool      `json:"paid"`
}

// NewSale cria uma nova venda. Vendas à vista nascem pagas; vendas a
// crédito nascem em aberto e exigem um cliente associado.
func NewSale(profileID string, amount float64, saleType Type, customerID, description string) (*Sale, error) {
	if !ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if saleType == TypeDebt && customerID == "" {
		return nil, ErrMissingCustomer
	}
	if saleType == TypeCash {
		// venda à vista não referencia cliente
		customerID = ""
	}

	return &Sale{
		ID:          uuid.New().String(),
		ProfileID:   profileID,
		Amount:      amount,
		Type:        saleType,
		CustomerID:  customerID,
		Description: strings.TrimSpace(description),
		Date:        time.Now(),
		Paid:        saleType == TypeCash,
	}, nil
}

// ValidAmount verifica se o valor é um número finito e positivo
func ValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}

// IsOpenDebt verifica se a venda é uma dívida em aberto que afeta o
// saldo devedor do cliente
func (s *Sale) IsOpenDebt() bool {
	return s.Type == TypeDebt && !s.Paid && s.CustomerID != ""
}
