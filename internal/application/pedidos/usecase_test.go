package pedidos_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/brindes-api/internal/application/estoque"
	"github.com/seu-usuario/brindes-api/internal/application/pedidos"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	pedidos map[string]*entity.Pedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: map[string]*entity.Pedido{}}
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error {
	copia := *p
	r.pedidos[p.ID] = &copia
	return nil
}

func (r *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakePedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) {
	return r.GetByID(id)
}

func (r *fakePedidoRepo) UpdateStatusAprovacao(id, status, aprovadorID string, dataAprovacao time.Time) error {
	p, ok := r.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	p.AprovadorID = &aprovadorID
	p.DataAprovacao = &dataAprovacao
	return nil
}

func (r *fakePedidoRepo) UpdateStatus(id, status string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *fakePedidoRepo) List() ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
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
	p, ok := r.produtos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantidade = quantidade
	return nil
}

func (r *fakeProdutoRepo) List() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeProdutoRepo) Delete(id string) error {
	delete(r.produtos, id)
	return nil
}

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

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	pedidoRepo  *fakePedidoRepo
	produtoRepo *fakeProdutoRepo
	movRepo     *fakeMovRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovimentacaoRepository, repository.ProdutoRepository) error) error {
	return fn(tx.movRepo, tx.produtoRepo)
}

func (tx *fakeTxRunner) RunPedido(ctx context.Context, fn func(repository.PedidoRepository, repository.ProdutoRepository, repository.MovimentacaoRepository) error) error {
	return fn(tx.pedidoRepo, tx.produtoRepo, tx.movRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

type cenario struct {
	uc          *pedidos.UseCase
	pedidoRepo  *fakePedidoRepo
	produtoRepo *fakeProdutoRepo
	movRepo     *fakeMovRepo
}

var (
	admin    = entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
	operario = entity.Actor{UserID: "op-1", Role: entity.RoleOperario}
	usuario  = entity.Actor{UserID: "user-1", Role: entity.RoleUsuario}
)

func novoCenario(t *testing.T) *cenario {
	t.Helper()
	pedidoRepo := newFakePedidoRepo()
	produtoRepo := newFakeProdutoRepo()
	movRepo := &fakeMovRepo{}
	tx := &fakeTxRunner{pedidoRepo: pedidoRepo, produtoRepo: produtoRepo, movRepo: movRepo}
	saida := estoque.NewRegistrarMovimentacaoUseCase(tx, produtoRepo, movRepo)
	uc := pedidos.NewUseCase(tx, pedidoRepo, produtoRepo, saida)
	return &cenario{uc: uc, pedidoRepo: pedidoRepo, produtoRepo: produtoRepo, movRepo: movRepo}
}

func (c *cenario) comProduto(t *testing.T, id string, estoque int) {
	t.Helper()
	require.NoError(t, c.produtoRepo.Create(&entity.Produto{
		ID: id, Codigo: "BR-" + id, Nome: "Caneca " + id, Quantidade: estoque,
	}))
}

func (c *cenario) comPedido(t *testing.T, id, produtoID, solicitante, status string, quantidade int) {
	t.Helper()
	require.NoError(t, c.pedidoRepo.Create(&entity.Pedido{
		ID: id, ProdutoID: produtoID, SolicitanteID: solicitante,
		Status: status, Quantidade: quantidade, CreatedAt: time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Criar
// ──────────────────────────────────────────────────────────────────────────────

func TestCriar_NasceEmPendente(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)

	pedido, err := c.uc.Criar(context.Background(), usuario, pedidos.CriarInput{
		ProdutoID: "prod-1", Quantidade: 3, Motivo: "feira de clientes",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendente, pedido.Status)
	assert.Equal(t, usuario.UserID, pedido.SolicitanteID)
	assert.Nil(t, pedido.AprovadorID, "pedido pendente não tem aprovador")
	assert.Nil(t, pedido.DataAprovacao)

	// criação não toca o estoque
	p, _ := c.produtoRepo.GetByID("prod-1")
	assert.Equal(t, 10, p.Quantidade)
}

func TestCriar_QuantidadeForaDosLimites(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)

	for _, q := range []int{0, -1, entity.QuantidadeMaximaPedido + 1} {
		_, err := c.uc.Criar(context.Background(), usuario, pedidos.CriarInput{ProdutoID: "prod-1", Quantidade: q})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade %d deveria ser rejeitada", q)
	}
}

func TestCriar_QuantidadePodeExcederEstoqueAtual(t *testing.T) {
	// A solicitação não reserva estoque; quem barra é a aprovação.
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 2)

	pedido, err := c.uc.Criar(context.Background(), usuario, pedidos.CriarInput{ProdutoID: "prod-1", Quantidade: 50})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, pedido.Status)
}

func TestCriar_ProdutoInexistente(t *testing.T) {
	c := novoCenario(t)
	_, err := c.uc.Criar(context.Background(), usuario, pedidos.CriarInput{ProdutoID: "fantasma", Quantidade: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprovar
// ──────────────────────────────────────────────────────────────────────────────

func TestAprovar_DecrementaEstoqueELancaSaida(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 4)

	require.NoError(t, c.uc.Aprovar(context.Background(), admin, "ped-1"))

	pedido, _ := c.pedidoRepo.GetByID("ped-1")
	assert.Equal(t, entity.StatusAprovado, pedido.Status)
	require.NotNil(t, pedido.AprovadorID)
	assert.Equal(t, admin.UserID, *pedido.AprovadorID)
	assert.NotNil(t, pedido.DataAprovacao)

	produto, _ := c.produtoRepo.GetByID("prod-1")
	assert.Equal(t, 6, produto.Quantidade, "estoque deve cair pela quantidade do pedido")

	require.Len(t, c.movRepo.movs, 1, "aprovação lança exatamente uma saída no livro")
	mov := c.movRepo.movs[0]
	assert.Equal(t, entity.TipoSaida, mov.Tipo)
	assert.Equal(t, 4, mov.Quantidade)
	assert.Equal(t, admin.UserID, mov.UsuarioID)
	assert.Contains(t, mov.Observacao, "aprovado")
}

func TestAprovar_EstoqueInsuficienteNaoMutaNada(t *testing.T) {
	// O estoque pode ter caído entre a criação e a aprovação; a aprovação
	// revalida contra o saldo atual.
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 3)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 5)

	err := c.uc.Aprovar(context.Background(), operario, "ped-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuf *domain.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 3, insuf.Disponivel, "o erro carrega a quantidade disponível")

	pedido, _ := c.pedidoRepo.GetByID("ped-1")
	assert.Equal(t, entity.StatusPendente, pedido.Status, "pedido segue pendente")
	produto, _ := c.produtoRepo.GetByID("prod-1")
	assert.Equal(t, 3, produto.Quantidade, "estoque intocado")
	assert.Empty(t, c.movRepo.movs, "nenhuma saída lançada")
}

func TestAprovar_EstoqueExato(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 5)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 5)

	require.NoError(t, c.uc.Aprovar(context.Background(), admin, "ped-1"))

	produto, _ := c.produtoRepo.GetByID("prod-1")
	assert.Equal(t, 0, produto.Quantidade, "estoque pode chegar a zero, nunca abaixo")
}

func TestAprovar_SomenteDePendente(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	for _, status := range []string{entity.StatusAprovado, entity.StatusRejeitada, entity.StatusFinalizado, entity.StatusConcluido} {
		c.comPedido(t, "ped-"+status, "prod-1", usuario.UserID, status, 1)
		err := c.uc.Aprovar(context.Background(), admin, "ped-"+status)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "aprovar a partir de %s", status)
	}
}

func TestAprovar_UsuarioComumNaoPode(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 1)

	err := c.uc.Aprovar(context.Background(), usuario, "ped-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAprovar_PedidoInexistente(t *testing.T) {
	c := novoCenario(t)
	err := c.uc.Aprovar(context.Background(), admin, "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rejeitar / Finalizar / Concluir
// ──────────────────────────────────────────────────────────────────────────────

func TestRejeitar_NaoTocaEstoque(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 4)

	require.NoError(t, c.uc.Rejeitar(context.Background(), operario, "ped-1"))

	pedido, _ := c.pedidoRepo.GetByID("ped-1")
	assert.Equal(t, entity.StatusRejeitada, pedido.Status)
	require.NotNil(t, pedido.AprovadorID)
	assert.Equal(t, operario.UserID, *pedido.AprovadorID)

	produto, _ := c.produtoRepo.GetByID("prod-1")
	assert.Equal(t, 10, produto.Quantidade)
	assert.Empty(t, c.movRepo.movs)
}

func TestRejeitar_SomenteDePendente(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusAprovado, 1)

	err := c.uc.Rejeitar(context.Background(), admin, "ped-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestFinalizar_DeAprovado(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusAprovado, 2)

	require.NoError(t, c.uc.Finalizar(context.Background(), operario, "ped-1"))

	pedido, _ := c.pedidoRepo.GetByID("ped-1")
	assert.Equal(t, entity.StatusFinalizado, pedido.Status)
}

func TestFinalizar_UsuarioComumNaoPode(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusAprovado, 2)

	err := c.uc.Finalizar(context.Background(), usuario, "ped-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestConcluir_SomenteOSolicitante(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusFinalizado, 2)

	// nem o admin conclui no lugar do solicitante
	err := c.uc.Concluir(context.Background(), admin, "ped-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, c.uc.Concluir(context.Background(), usuario, "ped-1"))
	pedido, _ := c.pedidoRepo.GetByID("ped-1")
	assert.Equal(t, entity.StatusConcluido, pedido.Status)
}

func TestConcluir_SomenteDeFinalizado(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusAprovado, 2)

	err := c.uc.Concluir(context.Background(), usuario, "ped-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_VisibilidadePorRole(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 1)
	c.comPedido(t, "ped-2", "prod-1", "outro", entity.StatusPendente, 1)
	c.comPedido(t, "ped-3", "prod-1", usuario.UserID, entity.StatusFinalizado, 1)

	resAdmin, err := c.uc.Listar(context.Background(), admin, "")
	require.NoError(t, err)
	assert.Len(t, resAdmin.Pedidos, 2, "gestão vê a fila administrativa (sem finalizados)")
	assert.Len(t, resAdmin.Filtros, 4)

	resUsuario, err := c.uc.Listar(context.Background(), usuario, "")
	require.NoError(t, err)
	assert.Len(t, resUsuario.Pedidos, 2, "usuario vê só os próprios, inclusive finalizados")
	assert.Len(t, resUsuario.Filtros, 6)
}

func TestListar_FiltroDeStatusInvalido(t *testing.T) {
	c := novoCenario(t)
	_, err := c.uc.Listar(context.Background(), admin, "cancelado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListar_FiltroPorStatus(t *testing.T) {
	c := novoCenario(t)
	c.comProduto(t, "prod-1", 10)
	c.comPedido(t, "ped-1", "prod-1", usuario.UserID, entity.StatusPendente, 1)
	c.comPedido(t, "ped-2", "prod-1", usuario.UserID, entity.StatusRejeitada, 1)

	res, err := c.uc.Listar(context.Background(), usuario, entity.StatusRejeitada)
	require.NoError(t, err)
	require.Len(t, res.Pedidos, 1)
	assert.Equal(t, "ped-2", res.Pedidos[0].ID)
}

// Regressão: o erro de estoque insuficiente deve continuar respondendo a
// errors.Is(err, ErrInsufficientStock) mesmo embrulhado.
func TestEstoqueInsuficienteError_Embrulhado(t *testing.T) {
	base := &domain.EstoqueInsuficienteError{Disponivel: 7}
	embrulhado := fmt.Errorf("aprovar pedido: %w", base)
	assert.ErrorIs(t, embrulhado, domain.ErrInsufficientStock)

	var insuf *domain.EstoqueInsuficienteError
	require.ErrorAs(t, embrulhado, &insuf)
	assert.Equal(t, 7, insuf.Disponivel)
}
