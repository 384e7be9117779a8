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
	"github.com/dividazero/dividazero-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo     saledomain.Repository
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, customerRepo customerdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create regista uma venda à vista ou a crédito
// @Summary Lançar venda
// @Description Regista a venda; vendas a crédito exigem cliente (existente ou criado na hora) e incrementam a dívida
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	profileID := ctx.GetString("profile_id")

	if err := ledger.ValidateAmount(req.Amount); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Valor inválido", err.Error()))
		return
	}

	customerID := req.CustomerID

	// Venda a crédito com cliente novo: o cliente é criado antes da venda
	if req.Type == saledomain.TypeDebt && customerID == "" {
		if req.NewCustomerName == "" {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Cliente obrigatório", "Selecione um cliente ou informe o nome de um novo"))
			return
		}

		newCustomer, err := customerdomain.NewCustomer(profileID, req.NewCustomerName, "")
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar cliente", err.Error()))
			return
		}
		if err := c.customerRepo.Create(ctx, newCustomer); err != nil {
			c.logger.Error("erro ao criar cliente para venda a crédito", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro no registo", err.Error()))
			return
		}
		customerID = newCustomer.ID
	}

	s, err := saledomain.NewSale(profileID, req.Amount, req.Type, customerID, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro no registo", err.Error()))
		return
	}

	response := dto.SaleCreatedResponse{}

	if s.Type == saledomain.TypeDebt {
		newDebt, err := c.saleRepo.CreateDebt(ctx, s)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
				return
			}
			c.logger.Error("erro ao registar venda a crédito", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro no registo", err.Error()))
			return
		}
		response.CustomerTotalDebt = &newDebt
	} else {
		if err := c.saleRepo.Create(ctx, s); err != nil {
			c.logger.Error("erro ao registar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro no registo", err.Error()))
			return
		}
	}

	response.Sale = dto.ToSaleResponse(s)
	ctx.JSON(http.StatusCreated, response)
}

// List lista as vendas do perfil, da mais recente para a mais antiga
// @Summary Listar vendas
// @Description Lista as vendas com paginação
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	sales, err := c.saleRepo.List(ctx, profileID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.CountByProfile(ctx, profileID)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, pagination.Page, pagination.PageSize))
}

// Delete remove uma venda, revertendo a dívida quando necessário
// @Summary Apagar venda
// @Description Remove a venda; dívidas em aberto são revertidas do saldo do cliente. Remover um ID já ausente não é erro.
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")
	id := ctx.Param("id")

	if err := c.saleRepo.Delete(ctx, profileID, id); err != nil {
		c.logger.Error("erro ao remover venda", "error", err, "sale_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao apagar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Venda apagada", nil))
}
