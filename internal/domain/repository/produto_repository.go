package repository

import "github.com/seu-usuario/brindes-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto (DIP).
// GetForUpdate só faz sentido dentro de transação (SELECT ... FOR UPDATE).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetForUpdate(id string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	UpdateQuantidade(id string, quantidade int) error
	List() ([]*entity.Produto, error)
	Delete(id string) error
}
