package entity

import "time"

// Status do ciclo de vida de um pedido.
// pendente → aprovado → finalizado → concluido, com o desvio
// pendente → rejeitada. concluido e rejeitada são terminais.
const (
	StatusPendente   = "pendente"
	StatusAprovado   = "aprovado"
	StatusRejeitada  = "rejeitada"
	StatusFinalizado = "finalizado"
	StatusConcluido  = "concluido"
)

// QuantidadeMaximaPedido limita a quantidade solicitada em um pedido.
const QuantidadeMaximaPedido = 100000

// Pedido é uma solicitação de retirada de brindes que avança por um fluxo
// de aprovação. Nunca é excluído; apenas muda de status, sempre para frente.
type Pedido struct {
	ID            string
	ProdutoID     string
	Quantidade    int // 1..QuantidadeMaximaPedido
	SolicitanteID string
	Motivo        string
	Status        string
	DataAprovacao *time.Time // definida na primeira transição de aprovação/rejeição
	AprovadorID   *string
	CreatedAt     time.Time

	Produto     *Produto // preenchido em listagens com join
	Solicitante *Profile
}

// transicoes enumera as arestas válidas da máquina de estados.
var transicoes = map[string][]string{
	StatusPendente:   {StatusAprovado, StatusRejeitada},
	StatusAprovado:   {StatusFinalizado},
	StatusFinalizado: {StatusConcluido},
}

// StatusValido informa se o valor pertence ao vocabulário de status.
func StatusValido(s string) bool {
	switch s {
	case StatusPendente, StatusAprovado, StatusRejeitada, StatusFinalizado, StatusConcluido:
		return true
	}
	return false
}

// StatusTerminal informa se o status não admite mais transições.
func StatusTerminal(s string) bool {
	return s == StatusConcluido || s == StatusRejeitada
}

// TransicaoValida informa se a mudança de status corresponde a uma aresta da
// máquina de estados. Pulos e retrocessos não são permitidos.
func TransicaoValida(de, para string) bool {
	for _, dest := range transicoes[de] {
		if dest == para {
			return true
		}
	}
	return false
}

// QuantidadePedidoValida valida o intervalo aceito para a quantidade
// solicitada. Reaplicada na aprovação, não só na criação.
func QuantidadePedidoValida(q int) bool {
	return q >= 1 && q <= QuantidadeMaximaPedido
}
