package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dividazero/dividazero-api/internal/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

func newCustomerFixture(t *testing.T) (*CustomerController, *fakeCustomerRepo, *fakeSaleRepo) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	saleRepo := newFakeSaleRepo(customerRepo)
	return NewCustomerController(customerRepo, saleRepo, nopLogger{}), customerRepo, saleRepo
}

func TestCreateCustomerRejectsBlankName(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)

	ctx, w := newTestContext(t, http.MethodPost, "/customers", map[string]interface{}{
		"name": "   ",
	})
	ctrl.Create(ctx)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperava 400, obteve %d", w.Code)
	}
	if len(customerRepo.customers) != 0 {
		t.Error("cliente com nome em branco não deveria ser criado")
	}
}

func TestRecordPaymentReducesDebt(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)
	ana := seedCustomer(t, customerRepo, "Ana", 500)

	ctx, w := newTestContext(t, http.MethodPost, "/customers/"+ana.ID+"/payments", map[string]interface{}{
		"amount": 200,
	})
	ctx.Params = gin.Params{{Key: "id", Value: ana.ID}}
	ctrl.RecordPayment(ctx)

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
	}

	var resp dto.PaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	if resp.TotalDebt != 300 {
		t.Errorf("esperava saldo 300, obteve %v", resp.TotalDebt)
	}
}

func TestRecordPaymentOverpaymentAbsorbedToZero(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)
	ana := seedCustomer(t, customerRepo, "Ana", 100)

	ctx, w := newTestContext(t, http.MethodPost, "/customers/"+ana.ID+"/payments", map[string]interface{}{
		"amount": 500,
	})
	ctx.Params = gin.Params{{Key: "id", Value: ana.ID}}
	ctrl.RecordPayment(ctx)

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d", w.Code)
	}
	if got := customerRepo.customers[ana.ID].TotalDebt; got != 0 {
		t.Errorf("excedente deve zerar o saldo, obteve %v", got)
	}
}

func TestRecordPaymentRejectsInvalidAmount(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)
	ana := seedCustomer(t, customerRepo, "Ana", 100)

	ctx, w := newTestContext(t, http.MethodPost, "/customers/"+ana.ID+"/payments", map[string]interface{}{
		"amount": -10,
	})
	ctx.Params = gin.Params{{Key: "id", Value: ana.ID}}
	ctrl.RecordPayment(ctx)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperava 400, obteve %d", w.Code)
	}
	if customerRepo.customers[ana.ID].TotalDebt != 100 {
		t.Error("pagamento inválido não pode alterar o saldo")
	}
}

func TestRecordPaymentUnknownCustomer(t *testing.T) {
	ctrl, _, _ := newCustomerFixture(t)

	ctx, w := newTestContext(t, http.MethodPost, "/customers/nope/payments", map[string]interface{}{
		"amount": 50,
	})
	ctx.Params = gin.Params{{Key: "id", Value: "nope"}}
	ctrl.RecordPayment(ctx)

	if w.Code != http.StatusNotFound {
		t.Fatalf("esperava 404, obteve %d", w.Code)
	}
}

func TestListDebtorsFlagsCriticalBalances(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)
	seedCustomer(t, customerRepo, "Ana", 3000)
	seedCustomer(t, customerRepo, "Bento", 100)

	ctx, w := newTestContext(t, http.MethodGet, "/customers/debtors", nil)
	ctrl.ListDebtors(ctx)

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
	}

	var resp dto.CustomerListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("esperava 2 devedores, obteve %d", len(resp.Items))
	}
	if !resp.Items[0].IsCritical || resp.Items[0].Name != "Ana" {
		t.Errorf("Ana (3000) deveria estar sinalizada como urgente: %+v", resp.Items[0])
	}
	if resp.Items[1].IsCritical {
		t.Errorf("Bento (100) não deveria estar sinalizado como urgente")
	}
}

func TestNotifyWithoutPhone(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)
	ana := seedCustomer(t, customerRepo, "Ana", 500)

	ctx, w := newTestContext(t, http.MethodGet, "/customers/"+ana.ID+"/notify", nil)
	ctx.Params = gin.Params{{Key: "id", Value: ana.ID}}
	ctrl.Notify(ctx)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("sem telefone: esperava 422, obteve %d", w.Code)
	}
}

func TestNotifyBuildsCollectionLink(t *testing.T) {
	ctrl, customerRepo, _ := newCustomerFixture(t)
	ana := seedCustomer(t, customerRepo, "Ana", 1500)
	customerRepo.customers[ana.ID].Phone = "84 123 4567"

	ctx, w := newTestContext(t, http.MethodGet, "/customers/"+ana.ID+"/notify", nil)
	ctx.Params = gin.Params{{Key: "id", Value: ana.ID}}
	ctrl.Notify(ctx)

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
	}

	var resp dto.NotifyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	if !strings.HasPrefix(resp.Link, "https://wa.me/258841234567") {
		t.Errorf("link inesperado: %s", resp.Link)
	}
}

func TestDeleteCustomerLeavesSales(t *testing.T) {
	ctrl, customerRepo, saleRepo := newCustomerFixture(t)
	ana := seedCustomer(t, customerRepo, "Ana", 0)

	// uma dívida registada antes da remoção do cliente
	sCtrl := NewSaleController(saleRepo, customerRepo, nopLogger{})
	sCtx, sw := newTestContext(t, http.MethodPost, "/sales", map[string]interface{}{
		"amount":      200,
		"type":        "divida",
		"customer_id": ana.ID,
	})
	sCtrl.Create(sCtx)
	if sw.Code != http.StatusCreated {
		t.Fatalf("esperava 201, obteve %d", sw.Code)
	}

	dCtx, dw := newTestContext(t, http.MethodDelete, "/customers/"+ana.ID, nil)
	dCtx.Params = gin.Params{{Key: "id", Value: ana.ID}}
	ctrl.Delete(dCtx)

	if dw.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d", dw.Code)
	}
	if len(saleRepo.sales) != 1 {
		t.Errorf("remover cliente não pode remover vendas: existem %d", len(saleRepo.sales))
	}
}
