package estoque

import (
	"context"

	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que lançamento da
// movimentação e mutação da quantidade aconteçam atomicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
