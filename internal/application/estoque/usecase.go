package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// limite padrão (e teto) do histórico de movimentações.
const historicoPadrao = 50

// RegistrarMovimentacaoUseCase é o livro de estoque: lança uma movimentação
// imutável e aplica o delta correspondente na quantidade do produto, dentro
// de uma transação com bloqueio de linha (SELECT FOR UPDATE).
type RegistrarMovimentacaoUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
	}
}

// MovimentacaoInput entrada para registrar uma movimentação manual.
type MovimentacaoInput struct {
	ProdutoID  string
	Tipo       string // entrada | saida
	Quantidade int
	Observacao string
}

// Registrar valida, inicia a transação, bloqueia a linha do produto, lança a
// movimentação e aplica o delta na quantidade. Saída exige
// quantidade <= estoque atual; a quantidade resultante nunca fica negativa.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, actor entity.Actor, input MovimentacaoInput) error {
	if !entity.CanManage(actor.Role) {
		return domain.ErrForbidden
	}
	if !entity.TipoValido(input.Tipo) || input.Quantidade < 1 || input.ProdutoID == "" {
		return domain.ErrInvalidInput
	}

	// Valida existência antes de abrir a transação
	produto, err := uc.produtoRepo.GetByID(input.ProdutoID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Bloqueia a linha do produto para evitar corrida entre lançamentos
		p, err := produtoRepo.GetForUpdate(input.ProdutoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		novaQuantidade := p.Quantidade
		switch input.Tipo {
		case entity.TipoEntrada:
			novaQuantidade += input.Quantidade
		case entity.TipoSaida:
			if input.Quantidade > p.Quantidade {
				return &domain.EstoqueInsuficienteError{Disponivel: p.Quantidade}
			}
			novaQuantidade -= input.Quantidade
		}

		mov := &entity.Movimentacao{
			ID:         uuid.New().String(),
			ProdutoID:  input.ProdutoID,
			Tipo:       input.Tipo,
			Quantidade: input.Quantidade,
			Observacao: input.Observacao,
			UsuarioID:  actor.UserID,
			CreatedAt:  now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return produtoRepo.UpdateQuantidade(input.ProdutoID, novaQuantidade)
	})
}

// RegistrarSaidaInTx lança uma saída usando os repositórios fornecidos
// (mesma transação do chamador). Usado pelo fluxo de aprovação de pedidos,
// que já validou a quantidade sob o mesmo bloqueio de linha.
func (uc *RegistrarMovimentacaoUseCase) RegistrarSaidaInTx(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	produto *entity.Produto,
	quantidade int,
	observacao, usuarioID string,
	now time.Time,
) error {
	mov := &entity.Movimentacao{
		ID:         uuid.New().String(),
		ProdutoID:  produto.ID,
		Tipo:       entity.TipoSaida,
		Quantidade: quantidade,
		Observacao: observacao,
		UsuarioID:  usuarioID,
		CreatedAt:  now,
	}
	if err := movRepo.Create(mov); err != nil {
		return err
	}
	return produtoRepo.UpdateQuantidade(produto.ID, produto.Quantidade-quantidade)
}

// Listar devolve o histórico de movimentações, mais recentes primeiro.
// limit <= 0 ou acima do teto usa o padrão de 50.
func (uc *RegistrarMovimentacaoUseCase) Listar(ctx context.Context, limit int) ([]*entity.Movimentacao, error) {
	if limit <= 0 || limit > historicoPadrao {
		limit = historicoPadrao
	}
	return uc.movRepo.List(limit)
}
