package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/brindes-api/internal/application/dashboard"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
)

type fakeProdutoRepo struct {
	produtos []*entity.Produto
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error                  { return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error)      { return nil, nil }
func (r *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) { return nil, nil }
func (r *fakeProdutoRepo) Update(p *entity.Produto) error                  { return nil }
func (r *fakeProdutoRepo) UpdateQuantidade(id string, q int) error         { return nil }
func (r *fakeProdutoRepo) Delete(id string) error                          { return nil }
func (r *fakeProdutoRepo) List() ([]*entity.Produto, error)                { return r.produtos, nil }

func TestResumo_ContagensESomaPorCategoria(t *testing.T) {
	canecas := &entity.Categoria{ID: "c1", Nome: "Canecas"}
	camisetas := &entity.Categoria{ID: "c2", Nome: "Camisetas"}
	uc := dashboard.NewUseCase(&fakeProdutoRepo{produtos: []*entity.Produto{
		{ID: "p1", Quantidade: 0, EstoqueMinimo: 5, Categoria: canecas},
		{ID: "p2", Quantidade: 3, EstoqueMinimo: 5, Categoria: canecas},
		{ID: "p3", Quantidade: 50, EstoqueMinimo: 5, Categoria: camisetas},
		{ID: "p4", Quantidade: 7, EstoqueMinimo: 5}, // sem categoria
	}})

	resumo, err := uc.Resumo(context.Background(), entity.Actor{UserID: "a", Role: entity.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, 4, resumo.TotalBrindes)
	assert.Equal(t, 1, resumo.SemEstoque)
	assert.Equal(t, 1, resumo.EstoqueBaixo)
	assert.Equal(t, 2, resumo.EstoqueNormal)

	require.Len(t, resumo.PorCategoria, 3)
	// ordenado por nome da categoria
	assert.Equal(t, "Camisetas", resumo.PorCategoria[0].Nome)
	assert.Equal(t, 50, resumo.PorCategoria[0].Quantidade)
	assert.Equal(t, "Canecas", resumo.PorCategoria[1].Nome)
	assert.Equal(t, 3, resumo.PorCategoria[1].Quantidade)
	assert.Equal(t, dashboard.SemCategoria, resumo.PorCategoria[2].Nome)
	assert.Equal(t, 7, resumo.PorCategoria[2].Quantidade)
}

func TestResumo_RestritoAGestao(t *testing.T) {
	uc := dashboard.NewUseCase(&fakeProdutoRepo{})
	_, err := uc.Resumo(context.Background(), entity.Actor{UserID: "u", Role: entity.RoleUsuario})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
