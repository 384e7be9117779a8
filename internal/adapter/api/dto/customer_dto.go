package dto

import (
	"time"

	"github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/pkg/format"
)

// CustomerRequest representa a requisição de criação de cliente
type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// PaymentRequest representa a requisição de recebimento de pagamento
type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID                 string    `json:"id"`
	ProfileID          string    `json:"profile_id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone,omitempty"`
	TotalDebt          float64   `json:"total_debt"`
	TotalDebtFormatted string    `json:"total_debt_formatted"`
	IsCritical         bool      `json:"is_critical"`
	CreatedAt          time.Time `json:"created_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}

// PaymentResponse representa a resposta de um pagamento recebido
type PaymentResponse struct {
	CustomerID         string  `json:"customer_id"`
	TotalDebt          float64 `json:"total_debt"`
	TotalDebtFormatted string  `json:"total_debt_formatted"`
}

// NotifyResponse representa o link de cobrança para um devedor
type NotifyResponse struct {
	CustomerID string `json:"customer_id"`
	Phone      string `json:"phone"`
	Link       string `json:"link"`
}

// ToCustomerResponse converte um Customer para CustomerResponse
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		ProfileID:          c.ProfileID,
		Name:               c.Name,
		Phone:              c.Phone,
		TotalDebt:          c.TotalDebt,
		TotalDebtFormatted: format.Currency(c.TotalDebt),
		IsCritical:         c.IsCritical(),
		CreatedAt:          c.CreatedAt,
	}
}

// ToCustomerListResponse converte uma lista de Customers
func ToCustomerListResponse(customers []*customer.Customer) CustomerListResponse {
	items := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, ToCustomerResponse(c))
	}
	return CustomerListResponse{
		Items: items,
		Total: len(items),
	}
}
