package controller

import (
	"net/http"
	"time"

	"github.com/dividazero/dividazero-api/internal/adapter/api/dto"
	customerdomain "github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/internal/domain/ledger"
	saledomain "github.com/dividazero/dividazero-api/internal/domain/sale"
	"github.com/dividazero/dividazero-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// topDebtorsInSummary limita a lista de maiores devedores do painel
const topDebtorsInSummary = 5

// SummaryController gerencia o painel de resumo financeiro
type SummaryController struct {
	saleRepo     saledomain.Repository
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewSummaryController cria uma nova instância de SummaryController
func NewSummaryController(saleRepo saledomain.Repository, customerRepo customerdomain.Repository, logger logger.Logger) *SummaryController {
	return &SummaryController{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Get calcula os totais do painel a partir das vendas e clientes do perfil
// @Summary Resumo financeiro
// @Description Totais do dia, do mês e saldo devedor global, com os maiores devedores
// @Tags summary
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summary [get]
func (c *SummaryController) Get(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")

	// os totais do mês precisam de todas as vendas do perfil; um limite
	// fixo deixaria o resumo subcontado
	total, err := c.saleRepo.CountByProfile(ctx, profileID)
	if err != nil {
		c.logger.Error("erro ao contar vendas para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar resumo", err.Error()))
		return
	}

	var sales []*saledomain.Sale
	if total > 0 {
		sales, err = c.saleRepo.List(ctx, profileID, total, 0)
		if err != nil {
			c.logger.Error("erro ao carregar vendas para o resumo", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar resumo", err.Error()))
			return
		}
	}

	customers, err := c.customerRepo.List(ctx, profileID)
	if err != nil {
		c.logger.Error("erro ao carregar clientes para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar resumo", err.Error()))
		return
	}

	summary := ledger.Summarize(sales, customers, time.Now())

	topDebtors := make([]dto.CustomerResponse, 0, topDebtorsInSummary)
	for _, d := range ledger.TopDebtors(customers, topDebtorsInSummary) {
		topDebtors = append(topDebtors, dto.ToCustomerResponse(d))
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary, topDebtors))
}
