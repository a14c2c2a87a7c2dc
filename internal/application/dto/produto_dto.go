package dto

import "time"

// ProdutoRequest criação/edição de um brinde no catálogo.
type ProdutoRequest struct {
	Codigo        string  `json:"codigo" validate:"required"`
	Nome          string  `json:"nome" validate:"required"`
	CategoriaID   *string `json:"categoria_id"`
	Quantidade    int     `json:"quantidade" validate:"min=0"`
	EstoqueMinimo int     `json:"estoque_minimo" validate:"min=0"`
	Localizacao   string  `json:"localizacao"`
	ImagemURL     string  `json:"imagem_url"`
	Fornecedor    string  `json:"fornecedor"`
	Descricao     string  `json:"descricao"`
}

// ProdutoResponse produto do catálogo com situação de estoque derivada.
type ProdutoResponse struct {
	ID            string             `json:"id"`
	Codigo        string             `json:"codigo"`
	Nome          string             `json:"nome"`
	CategoriaID   *string            `json:"categoria_id,omitempty"`
	Categoria     *CategoriaResponse `json:"categoria,omitempty"`
	Quantidade    int                `json:"quantidade"`
	EstoqueMinimo int                `json:"estoque_minimo"`
	Localizacao   string             `json:"localizacao,omitempty"`
	ImagemURL     string             `json:"imagem_url,omitempty"`
	Fornecedor    string             `json:"fornecedor,omitempty"`
	Descricao     string             `json:"descricao,omitempty"`
	Situacao      string             `json:"situacao"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// CategoriaRequest criação de categoria.
type CategoriaRequest struct {
	Nome string `json:"nome" validate:"required"`
}

// CategoriaResponse categoria de produtos.
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
