package controller

import (
	"errors"
	"net/http"

	"github.com/dividazero/dividazero-api/internal/adapter/api/dto"
	"github.com/dividazero/dividazero-api/internal/adapter/repository"
	profiledomain "github.com/dividazero/dividazero-api/internal/domain/profile"
	"github.com/dividazero/dividazero-api/pkg/auth"
	"github.com/dividazero/dividazero-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	profileRepo profiledomain.Repository
	config      auth.Config
	logger      logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(profileRepo profiledomain.Repository, config auth.Config, logger logger.Logger) *AuthController {
	return &AuthController{
		profileRepo: profileRepo,
		config:      config,
		logger:      logger,
	}
}

// Login autentica um perfil pelo PIN e retorna um token JWT
// @Summary Entrar na conta
// @Description Verifica o PIN e retorna um token JWT para a sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "PIN de acesso"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.profileRepo.FindByPIN(ctx, request.PIN)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			c.logger.Error("erro ao buscar perfil por PIN", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Sem conexão", err.Error()))
			return
		}

		// Fallback de demonstração: fora de produção, o PIN de demo
		// entra no perfil criado mais recentemente
		if !c.config.DemoLoginEnabled || request.PIN != c.config.DemoPIN {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "PIN incorreto", ""))
			return
		}
		p, err = c.profileRepo.FindLatest(ctx)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "PIN incorreto", ""))
			return
		}
		c.logger.Warn("login via PIN de demonstração", "profile_id", p.ID)
	}

	if p.IsBlocked() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Conta bloqueada", "Contacte o suporte para reativar a conta"))
		return
	}

	c.issueToken(ctx, p, http.StatusOK)
}

// Register cria um novo perfil de negócio e já devolve a sessão
// @Summary Criar nova conta
// @Description Regista um negócio e retorna o perfil com o token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Dados do negócio"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	pin := request.PIN
	if pin == "" {
		pin = c.config.DefaultPIN
	}

	p, err := profiledomain.NewProfile(request.BusinessName, pin, request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar conta", err.Error()))
		return
	}

	if err := c.profileRepo.Create(ctx, p); err != nil {
		c.logger.Error("erro ao criar perfil no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar conta", err.Error()))
		return
	}

	c.issueToken(ctx, p, http.StatusCreated)
}

// Me retorna o perfil autenticado
// @Summary Perfil da sessão
// @Description Retorna os dados do perfil do token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	profileID := ctx.GetString("profile_id")

	p, err := c.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Perfil não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar perfil", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(p))
}

func (c *AuthController) issueToken(ctx *gin.Context, p *profiledomain.Profile, status int) {
	jwtService, err := auth.NewJWTService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao configurar autenticação", err.Error()))
		return
	}

	token, expiresAt, err := jwtService.GenerateToken(p)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(status, dto.LoginResponse{
		Profile:     dto.ToProfileResponse(p),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}
