package entity

import "time"

// Roles válidos. Um usuário tem no máximo um role efetivo; a ausência de
// registro em user_roles implica o padrão RoleUsuario.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
	RoleUsuario  = "usuario"
)

// RoleValido informa se o valor pertence ao vocabulário de roles.
func RoleValido(role string) bool {
	return role == RoleAdmin || role == RoleOperario || role == RoleUsuario
}

// CanManage informa se o role pode gerenciar estoque e pedidos
// (aprovar, rejeitar, finalizar, registrar movimentações).
func CanManage(role string) bool {
	return role == RoleAdmin || role == RoleOperario
}

// Actor identifica quem executa uma operação: identidade + role, extraídos
// do token a cada requisição em vez de lidos de estado global.
type Actor struct {
	UserID string
	Role   string
}

// User é o registro de credenciais (o perfil exibível fica em Profile).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro após persistir
	Status       string // active, inactive
	CreatedAt    time.Time
}

// Profile são os dados exibíveis de uma identidade.
type Profile struct {
	ID        string // igual ao ID do User
	Nome      string
	Cargo     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
