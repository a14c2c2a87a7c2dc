package pedidos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	domainpedidos "github.com/seu-usuario/brindes-api/internal/domain/pedidos"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// UseCase é o motor do fluxo de pedidos: dono da máquina de estados, da
// autorização por transição e do invariante de que aprovação nunca deixa o
// estoque negativo.
type UseCase struct {
	txRunner    TxRunner
	pedidoRepo  repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
	saida       LancadorDeSaida
}

// NewUseCase constrói o motor de pedidos.
func NewUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	produtoRepo repository.ProdutoRepository,
	saida LancadorDeSaida,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		pedidoRepo:  pedidoRepo,
		produtoRepo: produtoRepo,
		saida:       saida,
	}
}

// CriarInput entrada para uma nova solicitação.
type CriarInput struct {
	ProdutoID  string
	Quantidade int
	Motivo     string
}

// Criar registra uma solicitação em status pendente. Qualquer role pode
// solicitar; a quantidade deve estar em [1, 100000] e o produto existir.
func (uc *UseCase) Criar(ctx context.Context, actor entity.Actor, input CriarInput) (*entity.Pedido, error) {
	if input.ProdutoID == "" || !entity.QuantidadePedidoValida(input.Quantidade) {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.GetByID(input.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	pedido := &entity.Pedido{
		ID:            uuid.New().String(),
		ProdutoID:     input.ProdutoID,
		Quantidade:    input.Quantidade,
		SolicitanteID: actor.UserID,
		Motivo:        input.Motivo,
		Status:        entity.StatusPendente,
		CreatedAt:     time.Now(),
	}
	if err := uc.pedidoRepo.Create(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// Aprovar executa pendente → aprovado em uma única transação: bloqueia o
// pedido e o produto, revalida a quantidade contra o estoque atual (o
// estoque pode ter mudado desde a criação), grava status/aprovador/data,
// decrementa o estoque e lança a saída no livro de movimentações.
// Estoque insuficiente não muta nada e devolve a quantidade disponível.
func (uc *UseCase) Aprovar(ctx context.Context, actor entity.Actor, pedidoID string) error {
	if !entity.CanManage(actor.Role) {
		return domain.ErrForbidden
	}
	now := time.Now()

	return uc.txRunner.RunPedido(ctx, func(
		pedidoRepo repository.PedidoRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if !entity.TransicaoValida(pedido.Status, entity.StatusAprovado) {
			return domain.ErrInvalidTransition
		}
		if !entity.QuantidadePedidoValida(pedido.Quantidade) {
			return domain.ErrInvalidInput
		}

		produto, err := produtoRepo.GetForUpdate(pedido.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		if produto.Quantidade-pedido.Quantidade < 0 {
			return &domain.EstoqueInsuficienteError{Disponivel: produto.Quantidade}
		}

		if err := pedidoRepo.UpdateStatusAprovacao(pedidoID, entity.StatusAprovado, actor.UserID, now); err != nil {
			return err
		}
		observacao := fmt.Sprintf("Pedido #%.8s aprovado", pedidoID)
		return uc.saida.RegistrarSaidaInTx(movRepo, produtoRepo, produto, pedido.Quantidade, observacao, actor.UserID, now)
	})
}

// Rejeitar executa pendente → rejeitada. Sem mudança de estoque; grava
// aprovador e data da decisão.
func (uc *UseCase) Rejeitar(ctx context.Context, actor entity.Actor, pedidoID string) error {
	if !entity.CanManage(actor.Role) {
		return domain.ErrForbidden
	}
	pedido, err := uc.carregar(pedidoID)
	if err != nil {
		return err
	}
	if !entity.TransicaoValida(pedido.Status, entity.StatusRejeitada) {
		return domain.ErrInvalidTransition
	}
	return uc.pedidoRepo.UpdateStatusAprovacao(pedidoID, entity.StatusRejeitada, actor.UserID, time.Now())
}

// Finalizar executa aprovado → finalizado (separação entregue).
func (uc *UseCase) Finalizar(ctx context.Context, actor entity.Actor, pedidoID string) error {
	if !entity.CanManage(actor.Role) {
		return domain.ErrForbidden
	}
	pedido, err := uc.carregar(pedidoID)
	if err != nil {
		return err
	}
	if !entity.TransicaoValida(pedido.Status, entity.StatusFinalizado) {
		return domain.ErrInvalidTransition
	}
	return uc.pedidoRepo.UpdateStatus(pedidoID, entity.StatusFinalizado)
}

// Concluir executa finalizado → concluido. Somente o solicitante original
// pode confirmar o recebimento, independentemente do role.
func (uc *UseCase) Concluir(ctx context.Context, actor entity.Actor, pedidoID string) error {
	pedido, err := uc.carregar(pedidoID)
	if err != nil {
		return err
	}
	if pedido.SolicitanteID != actor.UserID {
		return domain.ErrForbidden
	}
	if !entity.TransicaoValida(pedido.Status, entity.StatusConcluido) {
		return domain.ErrInvalidTransition
	}
	return uc.pedidoRepo.UpdateStatus(pedidoID, entity.StatusConcluido)
}

// ListarResult pedidos visíveis + filtros de status oferecidos para o role.
type ListarResult struct {
	Pedidos []*entity.Pedido
	Filtros []string
}

// Listar aplica o filtro de visibilidade por role e o filtro de status
// escolhido. A política mora em domain/pedidos; aqui só há o fetch.
func (uc *UseCase) Listar(ctx context.Context, actor entity.Actor, status string) (*ListarResult, error) {
	if status != "" && status != domainpedidos.FiltroTodos && !entity.StatusValido(status) {
		return nil, domain.ErrInvalidInput
	}
	todos, err := uc.pedidoRepo.List()
	if err != nil {
		return nil, err
	}
	visiveis := domainpedidos.Visiveis(actor.Role, actor.UserID, todos)
	return &ListarResult{
		Pedidos: domainpedidos.FiltrarPorStatus(visiveis, status),
		Filtros: domainpedidos.FiltrosDeStatus(actor.Role),
	}, nil
}

func (uc *UseCase) carregar(pedidoID string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	return pedido, nil
}
