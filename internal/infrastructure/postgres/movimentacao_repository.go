package postgres

import (
	"context"
	"fmt"

	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação de MovimentacaoRepository sobre PostgreSQL
// (usável com pool ou tx). O livro é append-only: só Create e List.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste um lançamento do livro de movimentações.
func (r *MovimentacaoRepo) Create(m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, produto_id, tipo, quantidade, observacao, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProdutoID, m.Tipo, m.Quantidade, nullable(m.Observacao), m.UsuarioID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimentacao: %w", err)
	}
	return nil
}

// List devolve as movimentações mais recentes primeiro, com produto
// (nome, código) e perfil do usuário juntados.
func (r *MovimentacaoRepo) List(limit int) ([]*entity.Movimentacao, error) {
	query := `
		SELECT m.id, m.produto_id, m.tipo, m.quantidade, m.observacao, m.usuario_id, m.created_at,
			p.nome, p.codigo, pr.nome
		FROM movimentacoes m
		JOIN produtos p ON p.id = m.produto_id
		LEFT JOIN profiles pr ON pr.id = m.usuario_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var observacao, produtoNome, produtoCodigo, usuarioNome *string
		if err := rows.Scan(
			&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &observacao, &m.UsuarioID, &m.CreatedAt,
			&produtoNome, &produtoCodigo, &usuarioNome,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		m.Observacao = deref(observacao)
		m.Produto = &entity.Produto{ID: m.ProdutoID, Nome: deref(produtoNome), Codigo: deref(produtoCodigo)}
		if usuarioNome != nil {
			m.Usuario = &entity.Profile{ID: m.UsuarioID, Nome: *usuarioNome}
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
