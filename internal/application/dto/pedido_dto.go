package dto

import "time"

// CriarPedidoRequest nova solicitação de brindes.
type CriarPedidoRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,min=1,max=100000"`
	Motivo     string `json:"motivo"`
}

// PedidoResponse pedido com produto e solicitante juntados.
type PedidoResponse struct {
	ID                string     `json:"id"`
	ProdutoID         string     `json:"produto_id"`
	ProdutoNome       string     `json:"produto_nome,omitempty"`
	ProdutoCodigo     string     `json:"produto_codigo,omitempty"`
	EstoqueDisponivel int        `json:"estoque_disponivel,omitempty"`
	Quantidade        int        `json:"quantidade"`
	SolicitanteID     string     `json:"solicitante_id"`
	SolicitanteNome   string     `json:"solicitante_nome,omitempty"`
	Motivo            string     `json:"motivo,omitempty"`
	Status            string     `json:"status"`
	DataAprovacao     *time.Time `json:"data_aprovacao,omitempty"`
	AprovadorID       *string    `json:"aprovador_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ListarPedidosResponse pedidos visíveis para o chamador mais as opções de
// filtro de status oferecidas para o role dele.
type ListarPedidosResponse struct {
	Pedidos []PedidoResponse `json:"pedidos"`
	Filtros []string         `json:"filtros"`
}
