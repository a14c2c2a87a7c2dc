package roles

import (
	"github.com/rs/zerolog/log"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// Resolver mapeia uma identidade para exatamente um role.
type Resolver struct {
	roleRepo repository.RoleRepository
}

// NewResolver constrói o resolver.
func NewResolver(roleRepo repository.RoleRepository) *Resolver {
	return &Resolver{roleRepo: roleRepo}
}

// Resolve devolve o role efetivo do usuário. Ausência de atribuição ou falha
// na consulta caem no role de menor privilégio ("usuario"), nunca em erro:
// uma identidade sem role conhecido ainda pode usar o sistema como usuário
// comum. A falha é registrada em warn.
func (r *Resolver) Resolve(userID string) string {
	role, err := r.roleRepo.Get(userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("consulta de role falhou, usando padrão")
		return entity.RoleUsuario
	}
	if !entity.RoleValido(role) {
		return entity.RoleUsuario
	}
	return role
}
