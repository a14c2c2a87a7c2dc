package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de produtos. Passar pool ou tx.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoCols = `id, codigo, nome, categoria_id, quantidade, estoque_minimo,
		localizacao, imagem_url, fornecedor, descricao, created_at, updated_at`

// Create persiste um produto novo.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, codigo, nome, categoria_id, quantidade, estoque_minimo,
			localizacao, imagem_url, fornecedor, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nome, p.CategoriaID, p.Quantidade, p.EstoqueMinimo,
		nullable(p.Localizacao), nullable(p.ImagemURL), nullable(p.Fornecedor), nullable(p.Descricao),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve nil, nil se não existir.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto")
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Só faz sentido dentro de transação.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto for update")
}

// Update grava os dados cadastrais do produto.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET codigo = $2, nome = $3, categoria_id = $4, quantidade = $5, estoque_minimo = $6,
			localizacao = $7, imagem_url = $8, fornecedor = $9, descricao = $10, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nome, p.CategoriaID, p.Quantidade, p.EstoqueMinimo,
		nullable(p.Localizacao), nullable(p.ImagemURL), nullable(p.Fornecedor), nullable(p.Descricao),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateQuantidade grava a quantidade em estoque. A constraint CHECK
// (quantidade >= 0) do banco é a última linha de defesa contra corrida.
func (r *ProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	query := `UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantidade)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// List devolve o catálogo ordenado por nome, com categoria juntada.
func (r *ProdutoRepo) List() ([]*entity.Produto, error) {
	query := `
		SELECT p.id, p.codigo, p.nome, p.categoria_id, p.quantidade, p.estoque_minimo,
			p.localizacao, p.imagem_url, p.fornecedor, p.descricao, p.created_at, p.updated_at,
			c.id, c.nome
		FROM produtos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		ORDER BY p.nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		var localizacao, imagemURL, fornecedor, descricao *string
		var catID, catNome *string
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Nome, &p.CategoriaID, &p.Quantidade, &p.EstoqueMinimo,
			&localizacao, &imagemURL, &fornecedor, &descricao, &p.CreatedAt, &p.UpdatedAt,
			&catID, &catNome,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		p.Localizacao = deref(localizacao)
		p.ImagemURL = deref(imagemURL)
		p.Fornecedor = deref(fornecedor)
		p.Descricao = deref(descricao)
		if catID != nil {
			p.Categoria = &entity.Categoria{ID: *catID, Nome: deref(catNome)}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto do catálogo.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

func (r *ProdutoRepo) scanOne(row pgx.Row, op string) (*entity.Produto, error) {
	var p entity.Produto
	var localizacao, imagemURL, fornecedor, descricao *string
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.CategoriaID, &p.Quantidade, &p.EstoqueMinimo,
		&localizacao, &imagemURL, &fornecedor, &descricao, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Localizacao = deref(localizacao)
	p.ImagemURL = deref(imagemURL)
	p.Fornecedor = deref(fornecedor)
	p.Descricao = deref(descricao)
	return &p, nil
}

// nullable devolve nil para strings vazias (colunas opcionais).
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
