package dto

import "time"

// RegisterRequest cadastro público de usuário (role padrão "usuario").
type RegisterRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sessão + dados do usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse dados exibíveis de um usuário (sem hash de senha).
type UserResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdatePasswordRequest troca de senha do próprio usuário (tela de
// configurações).
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUserRequest provisionamento de usuário pelo admin, com role definido.
type CreateUserRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin operario usuario"`
}
