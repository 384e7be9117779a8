package dto

import (
	"time"

	"github.com/dividazero/dividazero-api/internal/domain/sale"
	"github.com/dividazero/dividazero-api/pkg/format"
)

// SaleRequest representa a requisição de registo de venda. Para vendas
// a crédito, ou o cliente existente é escolhido (customer_id) ou um
// novo é criado na hora (new_customer_name).
type SaleRequest struct {
	Amount          float64   `json:"amount" binding:"required"`
	Type            sale.Type `json:"type" binding:"required,oneof=dinheiro divida"`
	CustomerID      string    `json:"customer_id"`
	NewCustomerName string    `json:"new_customer_name"`
	Description     string    `json:"description"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profile_id"`
	Amount          float64   `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	Type            sale.Type `json:"type"`
	CustomerID      string    `json:"customer_id,omitempty"`
	Description     string    `json:"description,omitempty"`
	Date            time.Time `json:"date"`
	DateFormatted   string    `json:"date_formatted"`
	Paid            bool      `json:"paid"`
}

// SaleCreatedResponse representa a resposta de registo de venda; para
// vendas a crédito inclui o novo saldo do cliente
type SaleCreatedResponse struct {
	Sale              SaleResponse `json:"sale"`
	CustomerTotalDebt *float64     `json:"customer_total_debt,omitempty"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleResponse converte uma Sale para SaleResponse
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		ProfileID:       s.ProfileID,
		Amount:          s.Amount,
		AmountFormatted: format.Currency(s.Amount),
		Type:            s.Type,
		CustomerID:      s.CustomerID,
		Description:     s.Description,
		Date:            s.Date,
		DateFormatted:   format.DateTime(s.Date),
		Paid:            s.Paid,
	}
}

// ToSaleListResponse converte uma lista de Sales com paginação
func ToSaleListResponse(sales []*sale.Sale, total, page, size int) SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	return SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
