package repository

import "github.com/seu-usuario/brindes-api/internal/domain/entity"

// CategoriaRepository define a porta de persistência para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
}
