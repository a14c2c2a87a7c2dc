package catalogo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// UseCase gerencia o catálogo de brindes e suas categorias.
// Restrito a roles de gestão; a quantidade em estoque informada aqui é o
// saldo inicial do cadastro — mutações posteriores passam pelo livro de
// movimentações ou pela aprovação de pedidos.
type UseCase struct {
	produtoRepo   repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewUseCase constrói o caso de uso do catálogo.
func NewUseCase(produtoRepo repository.ProdutoRepository, categoriaRepo repository.CategoriaRepository) *UseCase {
	return &UseCase{produtoRepo: produtoRepo, categoriaRepo: categoriaRepo}
}

// Listar devolve o catálogo ordenado por nome, com categoria juntada.
func (uc *UseCase) Listar(ctx context.Context, actor entity.Actor) ([]*entity.Produto, error) {
	if !entity.CanManage(actor.Role) {
		return nil, domain.ErrForbidden
	}
	return uc.produtoRepo.List()
}

// Criar cadastra um brinde novo.
func (uc *UseCase) Criar(ctx context.Context, actor entity.Actor, in dto.ProdutoRequest) (*entity.Produto, error) {
	if !entity.CanManage(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.Codigo == "" || in.Nome == "" || in.Quantidade < 0 || in.EstoqueMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nome:          in.Nome,
		CategoriaID:   in.CategoriaID,
		Quantidade:    in.Quantidade,
		EstoqueMinimo: in.EstoqueMinimo,
		Localizacao:   in.Localizacao,
		ImagemURL:     in.ImagemURL,
		Fornecedor:    in.Fornecedor,
		Descricao:     in.Descricao,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.produtoRepo.Create(produto); err != nil {
		return nil, err
	}
	return produto, nil
}

// Atualizar edita os dados cadastrais de um brinde.
func (uc *UseCase) Atualizar(ctx context.Context, actor entity.Actor, id string, in dto.ProdutoRequest) (*entity.Produto, error) {
	if !entity.CanManage(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.Codigo == "" || in.Nome == "" || in.Quantidade < 0 || in.EstoqueMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	produto.Codigo = in.Codigo
	produto.Nome = in.Nome
	produto.CategoriaID = in.CategoriaID
	produto.Quantidade = in.Quantidade
	produto.EstoqueMinimo = in.EstoqueMinimo
	produto.Localizacao = in.Localizacao
	produto.ImagemURL = in.ImagemURL
	produto.Fornecedor = in.Fornecedor
	produto.Descricao = in.Descricao
	produto.UpdatedAt = time.Now()
	if err := uc.produtoRepo.Update(produto); err != nil {
		return nil, err
	}
	return produto, nil
}

// Excluir remove um brinde do catálogo.
func (uc *UseCase) Excluir(ctx context.Context, actor entity.Actor, id string) error {
	if !entity.CanManage(actor.Role) {
		return domain.ErrForbidden
	}
	produto, err := uc.produtoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	return uc.produtoRepo.Delete(id)
}

// ListarCategorias devolve as categorias ordenadas por nome.
func (uc *UseCase) ListarCategorias(ctx context.Context, actor entity.Actor) ([]*entity.Categoria, error) {
	if !entity.CanManage(actor.Role) {
		return nil, domain.ErrForbidden
	}
	return uc.categoriaRepo.List()
}

// CriarCategoria cadastra uma categoria nova.
func (uc *UseCase) CriarCategoria(ctx context.Context, actor entity.Actor, nome string) (*entity.Categoria, error) {
	if !entity.CanManage(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		Nome:      nome,
		CreatedAt: time.Now(),
	}
	if err := uc.categoriaRepo.Create(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}
