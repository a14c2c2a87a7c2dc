package entity

import "time"

// Produto representa um brinde do estoque.
// Quantidade nunca fica negativa; toda mutação passa pelo livro de
// movimentações ou pela aprovação de pedidos, sempre dentro de transação.
type Produto struct {
	ID            string
	Codigo        string // código humano, único
	Nome          string
	CategoriaID   *string
	Quantidade    int // em estoque, >= 0
	EstoqueMinimo int // limite para alerta de estoque baixo, >= 0
	Localizacao   string
	ImagemURL     string
	Fornecedor    string
	Descricao     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Categoria *Categoria // preenchido em listagens com join
}

// Situação de estoque de um produto (dashboard e listagem do catálogo).
const (
	EstoqueSem    = "sem_estoque"
	EstoqueBaixo  = "estoque_baixo"
	EstoqueNormal = "normal"
)

// SituacaoEstoque classifica o produto conforme quantidade e estoque mínimo.
func (p *Produto) SituacaoEstoque() string {
	switch {
	case p.Quantidade == 0:
		return EstoqueSem
	case p.Quantidade <= p.EstoqueMinimo:
		return EstoqueBaixo
	default:
		return EstoqueNormal
	}
}
