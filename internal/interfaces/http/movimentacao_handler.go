package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/application/estoque"
	"github.com/seu-usuario/brindes-api/internal/domain"
)

// MovimentacaoHandler lançamento manual e histórico de movimentações.
type MovimentacaoHandler struct {
	uc       *estoque.RegistrarMovimentacaoUseCase
	validate *validator.Validate
}

// NewMovimentacaoHandler constrói o handler de movimentações.
func NewMovimentacaoHandler(uc *estoque.RegistrarMovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc, validate: validator.New()}
}

// Registrar godoc
// @Summary      Registrar entrada ou saída de estoque
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "produto_id, tipo, quantidade, observacao"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	err := h.uc.Registrar(c.Context(), GetActor(c), estoque.MovimentacaoInput{
		ProdutoID:  in.ProdutoID,
		Tipo:       in.Tipo,
		Quantidade: in.Quantidade,
		Observacao: in.Observacao,
	})
	if err != nil {
		var insuficiente *domain.EstoqueInsuficienteError
		if errors.As(err, &insuficiente) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("estoque insuficiente: disponível %d", insuficiente.Disponivel),
			})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimentação registrada"})
}

// Listar godoc
// @Summary      Histórico de movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de lançamentos (padrão 50)"
// @Success      200  {array}   dto.MovimentacaoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
	movs, err := h.uc.Listar(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		item := dto.MovimentacaoResponse{
			ID:         m.ID,
			ProdutoID:  m.ProdutoID,
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Observacao: m.Observacao,
			UsuarioID:  m.UsuarioID,
			CreatedAt:  m.CreatedAt,
		}
		if m.Produto != nil {
			item.ProdutoNome = m.Produto.Nome
			item.Codigo = m.Produto.Codigo
		}
		if m.Usuario != nil {
			item.UsuarioNome = m.Usuario.Nome
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}
