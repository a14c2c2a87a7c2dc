package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/brindes-api/internal/domain/entity"
)

func TestTransicaoValida_FluxoFeliz(t *testing.T) {
	// pendente → aprovado → finalizado → concluido
	assert.True(t, entity.TransicaoValida(entity.StatusPendente, entity.StatusAprovado))
	assert.True(t, entity.TransicaoValida(entity.StatusAprovado, entity.StatusFinalizado))
	assert.True(t, entity.TransicaoValida(entity.StatusFinalizado, entity.StatusConcluido))
}

func TestTransicaoValida_Rejeicao(t *testing.T) {
	assert.True(t, entity.TransicaoValida(entity.StatusPendente, entity.StatusRejeitada))
}

func TestTransicaoValida_SaltosProibidos(t *testing.T) {
	casos := []struct{ de, para string }{
		{entity.StatusPendente, entity.StatusFinalizado},
		{entity.StatusPendente, entity.StatusConcluido},
		{entity.StatusAprovado, entity.StatusConcluido},
		{entity.StatusAprovado, entity.StatusRejeitada},
		{entity.StatusAprovado, entity.StatusPendente},
		{entity.StatusFinalizado, entity.StatusAprovado},
	}
	for _, c := range casos {
		assert.False(t, entity.TransicaoValida(c.de, c.para),
			"transição %s → %s deveria ser inválida", c.de, c.para)
	}
}

func TestTransicaoValida_EstadosTerminaisNaoSaem(t *testing.T) {
	destinos := []string{
		entity.StatusPendente, entity.StatusAprovado, entity.StatusRejeitada,
		entity.StatusFinalizado, entity.StatusConcluido,
	}
	for _, terminal := range []string{entity.StatusRejeitada, entity.StatusConcluido} {
		for _, para := range destinos {
			assert.False(t, entity.TransicaoValida(terminal, para),
				"estado terminal %s não pode transicionar para %s", terminal, para)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, entity.StatusTerminal(entity.StatusRejeitada))
	assert.True(t, entity.StatusTerminal(entity.StatusConcluido))
	assert.False(t, entity.StatusTerminal(entity.StatusPendente))
	assert.False(t, entity.StatusTerminal(entity.StatusAprovado))
	assert.False(t, entity.StatusTerminal(entity.StatusFinalizado))
}

func TestStatusValido(t *testing.T) {
	for _, s := range []string{"pendente", "aprovado", "rejeitada", "finalizado", "concluido"} {
		assert.True(t, entity.StatusValido(s))
	}
	assert.False(t, entity.StatusValido("cancelado"))
	assert.False(t, entity.StatusValido(""))
}

func TestQuantidadePedidoValida_Limites(t *testing.T) {
	assert.False(t, entity.QuantidadePedidoValida(0))
	assert.True(t, entity.QuantidadePedidoValida(1))
	assert.True(t, entity.QuantidadePedidoValida(entity.QuantidadeMaximaPedido))
	assert.False(t, entity.QuantidadePedidoValida(entity.QuantidadeMaximaPedido+1))
	assert.False(t, entity.QuantidadePedidoValida(-5))
}
