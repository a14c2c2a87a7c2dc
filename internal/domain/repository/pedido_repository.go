package repository

import (
	"time"

	"github.com/seu-usuario/brindes-api/internal/domain/entity"
)

// PedidoRepository define a porta de persistência para Pedido.
// Pedidos nunca são excluídos; apenas o status (e os campos de aprovação)
// é atualizado. GetForUpdate só faz sentido dentro de transação.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetForUpdate(id string) (*entity.Pedido, error)
	// UpdateStatusAprovacao grava status, aprovador e data de aprovação
	// (transições pendente → aprovado / rejeitada).
	UpdateStatusAprovacao(id, status, aprovadorID string, dataAprovacao time.Time) error
	// UpdateStatus grava somente o status (finalizar e concluir).
	UpdateStatus(id, status string) error
	// List devolve os pedidos mais recentes primeiro, com produto
	// (nome, código, quantidade) e perfil do solicitante juntados.
	List() ([]*entity.Pedido, error)
}
