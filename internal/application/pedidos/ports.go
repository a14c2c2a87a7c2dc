package pedidos

import (
	"context"
	"time"

	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco com os três
// repositórios que a aprovação de um pedido toca: o pedido em si, o produto
// e o livro de movimentações. Status, quantidade e movimentação mudam juntos
// ou não mudam.
type TxRunner interface {
	RunPedido(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}

// LancadorDeSaida é o contrato com o livro de estoque para lançar a saída da
// aprovação dentro da transação corrente (a quantidade já foi validada sob o
// mesmo bloqueio de linha).
type LancadorDeSaida interface {
	RegistrarSaidaInTx(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		produto *entity.Produto,
		quantidade int,
		observacao, usuarioID string,
		now time.Time,
	) error
}
