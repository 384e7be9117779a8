// Package ledger concentra as regras de escrituração do caderno: como
// uma venda, um pagamento e uma remoção alteram o saldo devedor de um
// cliente, e como os totais do painel são derivados. Todas as funções
// são puras; a persistência fica a cargo dos repositórios.
package ledger

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/internal/domain/sale"
)

var ErrInvalidAmount = errors.New("valor deve ser um número positivo")

// ValidateAmount rejeita valores não finitos ou não positivos antes de
// qualquer escrita no banco
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ApplyDebtSale retorna o saldo devedor após registar uma venda a crédito
func ApplyDebtSale(currentDebt, amount float64) float64 {
	return currentDebt + amount
}

// ApplyPayment retorna o saldo devedor após um pagamento. Pagamento
// acima da dívida zera o saldo; o excedente não vira crédito.
func ApplyPayment(currentDebt, amount float64) float64 {
	return math.Max(0, currentDebt-amount)
}

// ReverseSale retorna o saldo devedor após remover uma dívida em aberto.
// O piso em zero vale mesmo quando a reversão excede o saldo restante.
func ReverseSale(currentDebt, amount float64) float64 {
	return math.Max(0, currentDebt-amount)
}

// Summary reúne os totais derivados exibidos no painel
type Summary struct {
	TodayTotal       float64
	MonthTotal       float64
	TotalOutstanding float64
}

// Summarize calcula os totais do dia, do mês e o saldo devedor global.
// Os totais de vendas incluem vendas à vista E a crédito: medem volume
// de vendas, não dinheiro recebido.
func Summarize(sales []*sale.Sale, customers []*customer.Customer, now time.Time) Summary {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var s Summary
	for _, v := range sales {
		if !v.Date.Before(monthStart) {
			s.MonthTotal += v.Amount
			if !v.Date.Before(midnight) {
				s.TodayTotal += v.Amount
			}
		}
	}
	for _, c := range customers {
		s.TotalOutstanding += c.TotalDebt
	}
	return s
}

// TopDebtors retorna os clientes com dívida em aberto, da maior para a
// menor, limitado a n entradas (n <= 0 retorna todos)
func TopDebtors(customers []*customer.Customer, n int) []*customer.Customer {
	debtors := make([]*customer.Customer, 0, len(customers))
	for _, c := range customers {
		if c.HasDebt() {
			debtors = append(debtors, c)
		}
	}
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].TotalDebt > debtors[j].TotalDebt
	})
	if n > 0 && len(debtors) > n {
		debtors = debtors[:n]
	}
	return debtors
}
