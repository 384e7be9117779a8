package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dividazero/dividazero-api/internal/adapter/api/dto"
	"github.com/dividazero/dividazero-api/internal/adapter/repository"
	customerdomain "github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/internal/domain/ledger"
	saledomain "github.com/dividazero/dividazero-api/internal/domain/sale"
	"github.com/dividazero/dividazero-api/pkg/format"
	"github.com/dividazero/dividazero-api/pkg/logger"
	"github.com/dividazero/dividazero-api/pkg/whatsapp"
	"github.com/gin-gonic/gin"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	saleRepo     saledomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, saleRepo saledomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		logger:       logger,
	}
}

// Create regista um novo cliente
// @Summary Registar cliente
// @Description Cria um novo cliente sem dívida
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	profileID := ctx.GetString("profile_id")

	customer, err := customerdomain.NewCustomer(profileID, req.Name, req.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, customer); err != nil {
		c.logger.Error("erro ao criar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// List lista os clientes do perfil, com busca opcional por nome
// @Summary Listar clientes
// @Description Lista os clientes; ?name= filtra por nome
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param name query string false "Filtro por nome"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")

	var customers []*customerdomain.Customer
	var err error

	if name := ctx.Query("name"); name != "" {
		customers, err = c.customerRepo.FindByName(ctx, profileID, name)
	} else {
		customers, err = c.customerRepo.List(ctx, profileID)
	}
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers))
}

// ListDebtors lista os clientes com dívida em aberto
// @Summary Listar devedores
// @Description Lista os clientes com dívida, da maior para a menor
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param limit query int false "Quantidade máxima"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/debtors [get]
func (c *CustomerController) ListDebtors(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	debtors, err := c.customerRepo.ListDebtors(ctx, profileID, limit)
	if err != nil {
		c.logger.Error("erro ao listar devedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar devedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(debtors))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")
	id := ctx.Param("id")

	customer, err := c.customerRepo.FindByID(ctx, profileID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// ListOpenSales lista as dívidas em aberto de um cliente
// @Summary Compras em aberto
// @Description Lista as vendas a crédito não pagas do cliente
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/sales [get]
func (c *CustomerController) ListOpenSales(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")
	id := ctx.Param("id")

	sales, err := c.saleRepo.ListOpenByCustomer(ctx, profileID, id)
	if err != nil {
		c.logger.Error("erro ao listar dívidas do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar dívidas", err.Error()))
		return
	}

	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, dto.ToSaleResponse(s))
	}
	ctx.JSON(http.StatusOK, items)
}

// RecordPayment recebe um pagamento e abate a dívida do cliente
// @Summary Receber pagamento
// @Description Abate o valor recebido do saldo devedor; excedente zera o saldo
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param payment body dto.PaymentRequest true "Valor recebido"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/payments [post]
func (c *CustomerController) RecordPayment(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	profileID := ctx.GetString("profile_id")
	id := ctx.Param("id")

	newDebt, err := c.customerRepo.RecordPayment(ctx, profileID, id, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Valor inválido", err.Error()))
		case errors.Is(err, repository.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		default:
			c.logger.Error("erro ao registar pagamento", "error", err, "customer_id", id)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro no pagamento", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentResponse{
		CustomerID:         id,
		TotalDebt:          newDebt,
		TotalDebtFormatted: format.Currency(newDebt),
	})
}

// Notify monta o link de cobrança por WhatsApp para um devedor
// @Summary Enviar cobrança
// @Description Retorna o link wa.me com a mensagem de cobrança pré-preenchida
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.NotifyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /customers/{id}/notify [get]
func (c *CustomerController) Notify(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")
	businessName := ctx.GetString("business_name")
	id := ctx.Param("id")

	customer, err := c.customerRepo.FindByID(ctx, profileID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	link, err := whatsapp.CollectionLink(customer.Phone, customer.Name, businessName, format.Currency(customer.TotalDebt))
	if err != nil {
		if errors.Is(err, whatsapp.ErrNoPhone) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Número não registado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao montar cobrança", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NotifyResponse{
		CustomerID: customer.ID,
		Phone:      customer.Phone,
		Link:       link,
	})
}

// Delete remove um cliente
// @Summary Eliminar cliente
// @Description Remove o cliente; as vendas ficam sem referência (operação irreversível)
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")
	id := ctx.Param("id")

	if err := c.customerRepo.Delete(ctx, profileID, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover cliente", "error", err, "customer_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao apagar", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente removido", nil))
}
