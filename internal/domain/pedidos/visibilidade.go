// Package pedidos concentra a política de visibilidade por role dos pedidos.
// Funções puras: sem I/O e sem efeitos colaterais; toda decisão de "quem vê
// o quê" mora aqui, não espalhada pelos handlers.
package pedidos

import "github.com/seu-usuario/brindes-api/internal/domain/entity"

// FiltroTodos é a opção de filtro que não restringe por status.
const FiltroTodos = "all"

// Visiveis devolve o subconjunto de pedidos que o chamador pode ver.
// Roles de gestão veem todos os pedidos ainda em andamento administrativo
// (tudo exceto finalizado e concluido); usuários comuns veem apenas os
// próprios pedidos, em qualquer status.
func Visiveis(role, userID string, todos []*entity.Pedido) []*entity.Pedido {
	visiveis := make([]*entity.Pedido, 0, len(todos))
	for _, p := range todos {
		if entity.CanManage(role) {
			if p.Status == entity.StatusFinalizado || p.Status == entity.StatusConcluido {
				continue
			}
			visiveis = append(visiveis, p)
			continue
		}
		if p.SolicitanteID == userID {
			visiveis = append(visiveis, p)
		}
	}
	return visiveis
}

// FiltrarPorStatus aplica o filtro de status escolhido na tela.
// FiltroTodos (ou vazio) não restringe.
func FiltrarPorStatus(pedidos []*entity.Pedido, status string) []*entity.Pedido {
	if status == "" || status == FiltroTodos {
		return pedidos
	}
	filtrados := make([]*entity.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if p.Status == status {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}

// FiltrosDeStatus devolve as opções de filtro oferecidas para o role.
func FiltrosDeStatus(role string) []string {
	if entity.CanManage(role) {
		return []string{FiltroTodos, entity.StatusPendente, entity.StatusAprovado, entity.StatusRejeitada}
	}
	return []string{
		FiltroTodos,
		entity.StatusPendente,
		entity.StatusAprovado,
		entity.StatusFinalizado,
		entity.StatusConcluido,
		entity.StatusRejeitada,
	}
}
