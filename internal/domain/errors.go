package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrInvalidTransition  = errors.New("transição de status inválida")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
)

// EstoqueInsuficienteError carrega a quantidade disponível para que a camada
// HTTP informe ao usuário quanto resta em estoque.
// errors.Is(err, ErrInsufficientStock) continua funcionando.
type EstoqueInsuficienteError struct {
	Disponivel int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente: disponível %d", e.Disponivel)
}

func (e *EstoqueInsuficienteError) Is(target error) bool {
	return target == ErrInsufficientStock
}
