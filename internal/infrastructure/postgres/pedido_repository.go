package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação de PedidoRepository sobre PostgreSQL
// (usável com pool ou tx). Sem Delete: pedidos só avançam de status.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador de pedidos. Passar pool ou tx.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoCols = `id, produto_id, quantidade, solicitante_id, motivo, status,
		data_aprovacao, aprovador_id, created_at`

// Create persiste um pedido novo (status pendente).
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, produto_id, quantidade, solicitante_id, motivo, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProdutoID, p.Quantidade, p.SolicitanteID, nullable(p.Motivo), p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create pedido: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID. Devolve nil, nil se não existir.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get pedido")
}

// GetForUpdate obtém o pedido bloqueando a linha (SELECT FOR UPDATE).
// Só faz sentido dentro de transação.
func (r *PedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get pedido for update")
}

// UpdateStatusAprovacao grava status, aprovador e data da decisão
// (aprovação ou rejeição).
func (r *PedidoRepo) UpdateStatusAprovacao(id, status, aprovadorID string, dataAprovacao time.Time) error {
	query := `UPDATE pedidos SET status = $2, aprovador_id = $3, data_aprovacao = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, aprovadorID, dataAprovacao)
	if err != nil {
		return fmt.Errorf("update status aprovacao: %w", err)
	}
	return nil
}

// UpdateStatus grava somente o status (finalizar e concluir).
func (r *PedidoRepo) UpdateStatus(id, status string) error {
	query := `UPDATE pedidos SET status = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// List devolve os pedidos mais recentes primeiro, com produto
// (nome, código, quantidade em estoque) e perfil do solicitante juntados.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `
		SELECT p.id, p.produto_id, p.quantidade, p.solicitante_id, p.motivo, p.status,
			p.data_aprovacao, p.aprovador_id, p.created_at,
			pr.nome, pr.codigo, pr.quantidade,
			s.nome
		FROM pedidos p
		JOIN produtos pr ON pr.id = p.produto_id
		LEFT JOIN profiles s ON s.id = p.solicitante_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		var motivo, solicitanteNome *string
		var produtoNome, produtoCodigo *string
		var produtoQuantidade *int
		if err := rows.Scan(
			&p.ID, &p.ProdutoID, &p.Quantidade, &p.SolicitanteID, &motivo, &p.Status,
			&p.DataAprovacao, &p.AprovadorID, &p.CreatedAt,
			&produtoNome, &produtoCodigo, &produtoQuantidade,
			&solicitanteNome,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		p.Motivo = deref(motivo)
		p.Produto = &entity.Produto{ID: p.ProdutoID, Nome: deref(produtoNome), Codigo: deref(produtoCodigo)}
		if produtoQuantidade != nil {
			p.Produto.Quantidade = *produtoQuantidade
		}
		if solicitanteNome != nil {
			p.Solicitante = &entity.Profile{ID: p.SolicitanteID, Nome: *solicitanteNome}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PedidoRepo) scanOne(row pgx.Row, op string) (*entity.Pedido, error) {
	var p entity.Pedido
	var motivo *string
	err := row.Scan(
		&p.ID, &p.ProdutoID, &p.Quantidade, &p.SolicitanteID, &motivo, &p.Status,
		&p.DataAprovacao, &p.AprovadorID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Motivo = deref(motivo)
	return &p, nil
}
