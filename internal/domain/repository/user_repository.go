package repository

import "github.com/seu-usuario/brindes-api/internal/domain/entity"

// UserRepository define a porta de persistência de credenciais.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
}

// ProfileRepository define a porta de persistência dos perfis exibíveis.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	// List ordena por nome, como a tela de usuários.
	List() ([]*entity.Profile, error)
}

// RoleRepository define a porta de persistência de atribuições de role.
// No máximo um role efetivo por usuário.
type RoleRepository interface {
	// Get devolve "" (sem erro) quando não há atribuição para o usuário.
	Get(userID string) (string, error)
	Upsert(userID, role string) error
	// ListAll devolve o mapa usuário → role de todas as atribuições.
	ListAll() (map[string]string, error)
}
