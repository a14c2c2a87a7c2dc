package repository

import "github.com/seu-usuario/brindes-api/internal/domain/entity"

// MovimentacaoRepository define a porta de persistência do livro de
// movimentações. Append-only: não há Update nem Delete.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	// List devolve as movimentações mais recentes primeiro, com produto
	// (nome, código) e perfil do usuário juntados.
	List(limit int) ([]*entity.Movimentacao, error)
}
