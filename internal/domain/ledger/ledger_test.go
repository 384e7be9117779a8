package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/internal/domain/sale"
)

func TestValidateAmount(t *testing.T) {
	bad := []float64{0, -1, -250.5, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range bad {
		if err := ValidateAmount(v); err == nil {
			t.Errorf("esperava erro para %v", v)
		}
	}
	good := []float64{0.5, 1, 100, 2500}
	for _, v := range good {
		if err := ValidateAmount(v); err != nil {
			t.Errorf("não esperava erro para %v: %v", v, err)
		}
	}
}

func TestApplyPaymentNeverNegative(t *testing.T) {
	if got := ApplyPayment(300, 200); got != 100 {
		t.Fatalf("esperava 100, obteve %v", got)
	}
	// pagamento acima da dívida zera o saldo, não vira crédito
	if got := ApplyPayment(100, 500); got != 0 {
		t.Fatalf("esperava 0, obteve %v", got)
	}
	if got := ApplyPayment(0, 50); got != 0 {
		t.Fatalf("esperava 0, obteve %v", got)
	}
}

// Replay de vendas a crédito e pagamentos: o saldo final tem que bater
// com max(0, soma das dívidas - soma dos pagamentos).
func TestReplaySequence(t *testing.T) {
	type op struct {
		kind   string // "sale" ou "payment"
		amount float64
	}
	cases := [][]op{
		{{"sale", 500}, {"payment", 200}},
		{{"sale", 100}, {"sale", 50}, {"payment", 300}},
		{{"payment", 100}},
		{{"sale", 250}, {"payment", 250}, {"sale", 75.5}},
		{{"sale", 10}, {"payment", 3}, {"payment", 3}, {"payment", 3}, {"payment", 3}},
	}

	for i, ops := range cases {
		var debt, sales, payments float64
		for _, o := range ops {
			switch o.kind {
			case "sale":
				debt = ApplyDebtSale(debt, o.amount)
				sales += o.amount
			case "payment":
				debt = ApplyPayment(debt, o.amount)
				payments += o.amount
			}
		}
		if debt < 0 {
			t.Errorf("caso %d: saldo negativo %v", i, debt)
		}
		want := math.Max(0, sales-payments)
		if math.Abs(debt-want) > 1e-9 {
			t.Errorf("caso %d: esperava %v, obteve %v", i, want, debt)
		}
	}
}

// Cenário da Ana: dívida de 500, pagamento de 200, remoção da venda
// original. O piso em zero vale mesmo com a reversão maior que o saldo.
func TestDeleteReversalFloorsAtZero(t *testing.T) {
	debt := ApplyDebtSale(0, 500)
	if debt != 500 {
		t.Fatalf("esperava 500, obteve %v", debt)
	}
	debt = ApplyPayment(debt, 200)
	if debt != 300 {
		t.Fatalf("esperava 300, obteve %v", debt)
	}
	debt = ReverseSale(debt, 500)
	if debt != 0 {
		t.Fatalf("esperava 0, obteve %v", debt)
	}
}

func mkSale(amount float64, st sale.Type, date time.Time) *sale.Sale {
	return &sale.Sale{Amount: amount, Type: st, Date: date, Paid: st == sale.TypeCash}
}

func TestSummarizeCountsBothTypes(t *testing.T) {
	now := time.Date(2025, 7, 15, 14, 30, 0, 0, time.Local)
	sales := []*sale.Sale{
		mkSale(100, sale.TypeCash, now.Add(-2*time.Hour)),
		mkSale(50, sale.TypeDebt, now.Add(-1*time.Hour)),
	}

	s := Summarize(sales, nil, now)
	if s.TodayTotal != 150 {
		t.Errorf("total do dia: esperava 150, obteve %v", s.TodayTotal)
	}
	if s.MonthTotal != 150 {
		t.Errorf("total do mês: esperava 150, obteve %v", s.MonthTotal)
	}
}

func TestSummarizeWindows(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.Local)
	yesterday := time.Date(2025, 7, 14, 23, 59, 0, 0, time.Local)
	lastMonth := time.Date(2025, 6, 30, 12, 0, 0, 0, time.Local)
	midnight := time.Date(2025, 7, 15, 0, 0, 0, 0, time.Local)

	sales := []*sale.Sale{
		mkSale(200, sale.TypeCash, yesterday), // conta no mês, não no dia
		mkSale(300, sale.TypeDebt, lastMonth), // não conta em nenhum
		mkSale(80, sale.TypeCash, midnight),   // limite inclusivo
	}

	s := Summarize(sales, nil, now)
	if s.TodayTotal != 80 {
		t.Errorf("total do dia: esperava 80, obteve %v", s.TodayTotal)
	}
	if s.MonthTotal != 280 {
		t.Errorf("total do mês: esperava 280, obteve %v", s.MonthTotal)
	}
}

func TestSummarizeOutstanding(t *testing.T) {
	customers := []*customer.Customer{
		{Name: "Ana", TotalDebt: 500},
		{Name: "Bento", TotalDebt: 0},
		{Name: "Carla", TotalDebt: 1250.50},
	}

	s := Summarize(nil, customers, time.Now())
	if s.TotalOutstanding != 1750.50 {
		t.Errorf("saldo devedor: esperava 1750.50, obteve %v", s.TotalOutstanding)
	}
}

func TestTopDebtors(t *testing.T) {
	customers := []*customer.Customer{
		{Name: "Ana", TotalDebt: 100},
		{Name: "Bento", TotalDebt: 0},
		{Name: "Carla", TotalDebt: 2500},
		{Name: "Dino", TotalDebt: 700},
	}

	top := TopDebtors(customers, 2)
	if len(top) != 2 {
		t.Fatalf("esperava 2 devedores, obteve %d", len(top))
	}
	if top[0].Name != "Carla" || top[1].Name != "Dino" {
		t.Errorf("ordem inesperada: %s, %s", top[0].Name, top[1].Name)
	}

	all := TopDebtors(customers, 0)
	if len(all) != 3 {
		t.Errorf("esperava 3 devedores, obteve %d", len(all))
	}
}
