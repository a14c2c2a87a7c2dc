package entity

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// TipoValido informa se o tipo de movimentação é conhecido.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida
}

// Movimentacao é um lançamento imutável do livro de estoque: uma variação
// direcional de quantidade contra um produto. Nunca é atualizada nem
// removida depois de criada.
type Movimentacao struct {
	ID         string
	ProdutoID  string
	Tipo       string // entrada | saida
	Quantidade int    // sempre positiva; o tipo determina o sinal do delta
	Observacao string
	UsuarioID  string
	CreatedAt  time.Time

	Produto *Produto // preenchido em listagens com join
	Usuario *Profile
}
