package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/brindes-api/internal/application/catalogo"
	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
)

// ProdutoHandler catálogo de brindes e categorias.
type ProdutoHandler struct {
	uc       *catalogo.UseCase
	validate *validator.Validate
}

// NewProdutoHandler constrói o handler do catálogo.
func NewProdutoHandler(uc *catalogo.UseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, validate: validator.New()}
}

// Listar godoc
// @Summary      Listar catálogo de brindes
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProdutoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	produtos, err := h.uc.Listar(c.Context(), GetActor(c))
	if err != nil {
		return respostaCatalogo(c, err)
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, toProdutoResponse(p))
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Cadastrar brinde
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProdutoRequest  true  "dados do brinde"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	produto, err := h.uc.Criar(c.Context(), GetActor(c), in)
	if err != nil {
		return respostaCatalogo(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProdutoResponse(produto))
}

// Atualizar godoc
// @Summary      Editar brinde
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID do brinde"
// @Param        body  body  dto.ProdutoRequest  true  "dados do brinde"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	produto, err := h.uc.Atualizar(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respostaCatalogo(c, err)
	}
	return c.JSON(toProdutoResponse(produto))
}

// Excluir godoc
// @Summary      Remover brinde do catálogo
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do brinde"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Excluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respostaCatalogo(c, err)
	}
	return c.JSON(fiber.Map{"message": "produto removido"})
}

// ListarCategorias godoc
// @Summary      Listar categorias
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CategoriaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/categorias [get]
func (h *ProdutoHandler) ListarCategorias(c *fiber.Ctx) error {
	categorias, err := h.uc.ListarCategorias(c.Context(), GetActor(c))
	if err != nil {
		return respostaCatalogo(c, err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, cat := range categorias {
		out = append(out, dto.CategoriaResponse{ID: cat.ID, Nome: cat.Nome})
	}
	return c.JSON(out)
}

// CriarCategoria godoc
// @Summary      Cadastrar categoria
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "nome"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *ProdutoHandler) CriarCategoria(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	categoria, err := h.uc.CriarCategoria(c.Context(), GetActor(c), in.Nome)
	if err != nil {
		return respostaCatalogo(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome})
}

func respostaCatalogo(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso restrito à gestão"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro já existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toProdutoResponse(p *entity.Produto) dto.ProdutoResponse {
	out := dto.ProdutoResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		CategoriaID:   p.CategoriaID,
		Quantidade:    p.Quantidade,
		EstoqueMinimo: p.EstoqueMinimo,
		Localizacao:   p.Localizacao,
		ImagemURL:     p.ImagemURL,
		Fornecedor:    p.Fornecedor,
		Descricao:     p.Descricao,
		Situacao:      p.SituacaoEstoque(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Categoria != nil {
		out.Categoria = &dto.CategoriaResponse{ID: p.Categoria.ID, Nome: p.Categoria.Nome}
	}
	return out
}
