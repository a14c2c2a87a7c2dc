package dto

import "time"

// UsuarioComRole linha da tela de usuários: perfil + role efetivo.
type UsuarioComRole struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cargo     string    `json:"cargo,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AtribuirRoleRequest mudança do role de um usuário (admin).
type AtribuirRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin operario usuario"`
}
