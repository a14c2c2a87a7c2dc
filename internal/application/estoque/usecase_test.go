package estoque_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/brindes-api/internal/application/estoque"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return r.GetByID(id)
}

func (r *fakeProdutoRepo) Update(p *entity.Produto) error {
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *fakeProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	r.produtos[id].Quantidade = quantidade
	return nil
}

func (r *fakeProdutoRepo) List() ([]*entity.Produto, error) { return nil, nil }
func (r *fakeProdutoRepo) Delete(id string) error           { return nil }

type fakeMovRepo struct {
	movs []*entity.Movimentacao
}

func (r *fakeMovRepo) Create(m *entity.Movimentacao) error {
	copia := *m
	r.movs = append(r.movs, &copia)
	return nil
}

func (r *fakeMovRepo) List(limit int) ([]*entity.Movimentacao, error) {
	if limit > len(r.movs) {
		limit = len(r.movs)
	}
	return r.movs[:limit], nil
}

type fakeTxRunner struct {
	movRepo     *fakeMovRepo
	produtoRepo *fakeProdutoRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovimentacaoRepository, repository.ProdutoRepository) error) error {
	return fn(tx.movRepo, tx.produtoRepo)
}

func montar(t *testing.T, estoqueInicial int) (*estoque.RegistrarMovimentacaoUseCase, *fakeProdutoRepo, *fakeMovRepo) {
	t.Helper()
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
	movRepo := &fakeMovRepo{}
	require.NoError(t, produtoRepo.Create(&entity.Produto{
		ID: "prod-1", Codigo: "BR-001", Nome: "Caneca", Quantidade: estoqueInicial,
	}))
	tx := &fakeTxRunner{movRepo: movRepo, produtoRepo: produtoRepo}
	return estoque.NewRegistrarMovimentacaoUseCase(tx, produtoRepo, movRepo), produtoRepo, movRepo
}

var (
	operario = entity.Actor{UserID: "op-1", Role: entity.RoleOperario}
	usuario  = entity.Actor{UserID: "user-1", Role: entity.RoleUsuario}
)

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSomaEstoque(t *testing.T) {
	uc, produtoRepo, movRepo := montar(t, 10)

	err := uc.Registrar(context.Background(), operario, estoque.MovimentacaoInput{
		ProdutoID: "prod-1", Tipo: entity.TipoEntrada, Quantidade: 5, Observacao: "reposição fornecedor",
	})
	require.NoError(t, err)

	p, _ := produtoRepo.GetByID("prod-1")
	assert.Equal(t, 15, p.Quantidade)

	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, entity.TipoEntrada, movRepo.movs[0].Tipo)
	assert.Equal(t, 5, movRepo.movs[0].Quantidade)
	assert.Equal(t, operario.UserID, movRepo.movs[0].UsuarioID)
}

func TestRegistrar_SaidaSubtraiEstoque(t *testing.T) {
	uc, produtoRepo, movRepo := montar(t, 10)

	err := uc.Registrar(context.Background(), operario, estoque.MovimentacaoInput{
		ProdutoID: "prod-1", Tipo: entity.TipoSaida, Quantidade: 10,
	})
	require.NoError(t, err)

	p, _ := produtoRepo.GetByID("prod-1")
	assert.Equal(t, 0, p.Quantidade, "saída do saldo inteiro zera o estoque")
	require.Len(t, movRepo.movs, 1)
}

func TestRegistrar_SaidaMaiorQueEstoque(t *testing.T) {
	uc, produtoRepo, movRepo := montar(t, 3)

	err := uc.Registrar(context.Background(), operario, estoque.MovimentacaoInput{
		ProdutoID: "prod-1", Tipo: entity.TipoSaida, Quantidade: 4,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuf *domain.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 3, insuf.Disponivel)

	p, _ := produtoRepo.GetByID("prod-1")
	assert.Equal(t, 3, p.Quantidade, "estoque nunca fica negativo")
	assert.Empty(t, movRepo.movs, "movimentação recusada não entra no livro")
}

func TestRegistrar_ValidacaoDeEntrada(t *testing.T) {
	uc, _, _ := montar(t, 10)
	ctx := context.Background()

	casos := []estoque.MovimentacaoInput{
		{ProdutoID: "prod-1", Tipo: "transferencia", Quantidade: 1},
		{ProdutoID: "prod-1", Tipo: entity.TipoEntrada, Quantidade: 0},
		{ProdutoID: "prod-1", Tipo: entity.TipoSaida, Quantidade: -2},
		{ProdutoID: "", Tipo: entity.TipoEntrada, Quantidade: 1},
	}
	for _, in := range casos {
		assert.ErrorIs(t, uc.Registrar(ctx, operario, in), domain.ErrInvalidInput,
			"input %+v deveria ser rejeitado", in)
	}
}

func TestRegistrar_UsuarioComumNaoPode(t *testing.T) {
	uc, _, _ := montar(t, 10)
	err := uc.Registrar(context.Background(), usuario, estoque.MovimentacaoInput{
		ProdutoID: "prod-1", Tipo: entity.TipoEntrada, Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrar_ProdutoInexistente(t *testing.T) {
	uc, _, _ := montar(t, 10)
	err := uc.Registrar(context.Background(), operario, estoque.MovimentacaoInput{
		ProdutoID: "fantasma", Tipo: entity.TipoEntrada, Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_LimiteClampado(t *testing.T) {
	uc, _, movRepo := montar(t, 100)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		require.NoError(t, uc.Registrar(ctx, operario, estoque.MovimentacaoInput{
			ProdutoID: "prod-1", Tipo: entity.TipoEntrada, Quantidade: 1,
		}))
	}
	require.Len(t, movRepo.movs, 60)

	// limite fora da faixa cai no padrão de 50
	lista, err := uc.Listar(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, lista, 50)

	lista, err = uc.Listar(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, lista, 50)

	lista, err = uc.Listar(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, lista, 10)
}
