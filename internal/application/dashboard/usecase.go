package dashboard

import (
	"context"
	"sort"

	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// SemCategoria rótulo do agrupamento de produtos sem categoria.
const SemCategoria = "Sem categoria"

// UseCase indicadores do painel inicial, derivados do catálogo.
// Visível apenas para roles de gestão.
type UseCase struct {
	produtoRepo repository.ProdutoRepository
}

// NewUseCase constrói o caso de uso do dashboard.
func NewUseCase(produtoRepo repository.ProdutoRepository) *UseCase {
	return &UseCase{produtoRepo: produtoRepo}
}

// Resumo conta produtos por situação de estoque e agrega a quantidade em
// estoque por categoria.
func (uc *UseCase) Resumo(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error) {
	if !entity.CanManage(actor.Role) {
		return nil, domain.ErrForbidden
	}
	produtos, err := uc.produtoRepo.List()
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{TotalBrindes: len(produtos)}
	porCategoria := map[string]int{}
	for _, p := range produtos {
		switch p.SituacaoEstoque() {
		case entity.EstoqueSem:
			resp.SemEstoque++
		case entity.EstoqueBaixo:
			resp.EstoqueBaixo++
		default:
			resp.EstoqueNormal++
		}
		nome := SemCategoria
		if p.Categoria != nil {
			nome = p.Categoria.Nome
		}
		porCategoria[nome] += p.Quantidade
	}

	for nome, quantidade := range porCategoria {
		resp.PorCategoria = append(resp.PorCategoria, dto.CategoriaQuantidade{Nome: nome, Quantidade: quantidade})
	}
	sort.Slice(resp.PorCategoria, func(i, j int) bool {
		return resp.PorCategoria[i].Nome < resp.PorCategoria[j].Nome
	})
	return resp, nil
}
