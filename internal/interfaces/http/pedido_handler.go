package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/application/pedidos"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
)

// PedidoHandler fluxo de pedidos: criação, listagem e transições de status.
type PedidoHandler struct {
	uc       *pedidos.UseCase
	validate *validator.Validate
}

// NewPedidoHandler constrói o handler de pedidos.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, validate: validator.New()}
}

// Criar godoc
// @Summary      Criar solicitação de brindes
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarPedidoRequest  true  "produto_id, quantidade, motivo"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pedido, err := h.uc.Criar(c.Context(), GetActor(c), pedidos.CriarInput{
		ProdutoID:  in.ProdutoID,
		Quantidade: in.Quantidade,
		Motivo:     in.Motivo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toPedidoResponse(pedido))
}

// Listar godoc
// @Summary      Listar pedidos visíveis para o chamador
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de status (all, pendente, aprovado, ...)"
// @Success      200  {object}  dto.ListarPedidosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	result, err := h.uc.Listar(c.Context(), GetActor(c), c.Query("status"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconhecido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := dto.ListarPedidosResponse{
		Pedidos: make([]dto.PedidoResponse, 0, len(result.Pedidos)),
		Filtros: result.Filtros,
	}
	for _, p := range result.Pedidos {
		resp.Pedidos = append(resp.Pedidos, toPedidoResponse(p))
	}
	return c.JSON(resp)
}

// Aprovar godoc
// @Summary      Aprovar pedido pendente
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/aprovar [post]
func (h *PedidoHandler) Aprovar(c *fiber.Ctx) error {
	err := h.uc.Aprovar(c.Context(), GetActor(c), c.Params("id"))
	return h.respostaTransicao(c, err, "pedido aprovado")
}

// Rejeitar godoc
// @Summary      Rejeitar pedido pendente
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/rejeitar [post]
func (h *PedidoHandler) Rejeitar(c *fiber.Ctx) error {
	err := h.uc.Rejeitar(c.Context(), GetActor(c), c.Params("id"))
	return h.respostaTransicao(c, err, "pedido rejeitado")
}

// Finalizar godoc
// @Summary      Finalizar pedido aprovado (separação entregue)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/finalizar [post]
func (h *PedidoHandler) Finalizar(c *fiber.Ctx) error {
	err := h.uc.Finalizar(c.Context(), GetActor(c), c.Params("id"))
	return h.respostaTransicao(c, err, "pedido finalizado")
}

// Concluir godoc
// @Summary      Confirmar recebimento (somente o solicitante)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/concluir [post]
func (h *PedidoHandler) Concluir(c *fiber.Ctx) error {
	err := h.uc.Concluir(c.Context(), GetActor(c), c.Params("id"))
	return h.respostaTransicao(c, err, "recebimento confirmado")
}

// respostaTransicao mapeia os erros comuns das transições de status.
func (h *PedidoHandler) respostaTransicao(c *fiber.Ctx, err error, okMsg string) error {
	if err == nil {
		return c.JSON(fiber.Map{"message": okMsg})
	}
	var insuficiente *domain.EstoqueInsuficienteError
	if errors.As(err, &insuficiente) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("estoque insuficiente: disponível %d", insuficiente.Disponivel),
		})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sem permissão para esta transição"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transição de status inválida"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toPedidoResponse(p *entity.Pedido) dto.PedidoResponse {
	resp := dto.PedidoResponse{
		ID:            p.ID,
		ProdutoID:     p.ProdutoID,
		Quantidade:    p.Quantidade,
		SolicitanteID: p.SolicitanteID,
		Motivo:        p.Motivo,
		Status:        p.Status,
		DataAprovacao: p.DataAprovacao,
		AprovadorID:   p.AprovadorID,
		CreatedAt:     p.CreatedAt,
	}
	if p.Produto != nil {
		resp.ProdutoNome = p.Produto.Nome
		resp.ProdutoCodigo = p.Produto.Codigo
		resp.EstoqueDisponivel = p.Produto.Quantidade
	}
	if p.Solicitante != nil {
		resp.SolicitanteNome = p.Solicitante.Nome
	}
	return resp
}
