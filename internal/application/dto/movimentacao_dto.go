package dto

import "time"

// RegistrarMovimentacaoRequest lançamento manual de entrada ou saída.
type RegistrarMovimentacaoRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required"`
	Tipo       string `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
	Observacao string `json:"observacao"`
}

// MovimentacaoResponse lançamento do livro de movimentações.
type MovimentacaoResponse struct {
	ID          string    `json:"id"`
	ProdutoID   string    `json:"produto_id"`
	ProdutoNome string    `json:"produto_nome,omitempty"`
	Codigo      string    `json:"produto_codigo,omitempty"`
	Tipo        string    `json:"tipo"`
	Quantidade  int       `json:"quantidade"`
	Observacao  string    `json:"observacao,omitempty"`
	UsuarioID   string    `json:"usuario_id"`
	UsuarioNome string    `json:"usuario_nome,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
