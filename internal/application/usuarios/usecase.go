package usuarios

import (
	"context"

	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

// UseCase tela de usuários: listagem de perfis com role efetivo e
// atribuição de roles. Restrito ao admin.
type UseCase struct {
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
}

// NewUseCase constrói o caso de uso de usuários.
func NewUseCase(profileRepo repository.ProfileRepository, roleRepo repository.RoleRepository) *UseCase {
	return &UseCase{profileRepo: profileRepo, roleRepo: roleRepo}
}

// Listar combina perfis (ordenados por nome) com as atribuições de role.
// Perfis sem atribuição aparecem com o padrão "usuario".
func (uc *UseCase) Listar(ctx context.Context, actor entity.Actor) ([]dto.UsuarioComRole, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	profiles, err := uc.profileRepo.List()
	if err != nil {
		return nil, err
	}
	atribuicoes, err := uc.roleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	usuarios := make([]dto.UsuarioComRole, 0, len(profiles))
	for _, p := range profiles {
		role := atribuicoes[p.ID]
		if !entity.RoleValido(role) {
			role = entity.RoleUsuario
		}
		usuarios = append(usuarios, dto.UsuarioComRole{
			ID:        p.ID,
			Nome:      p.Nome,
			Cargo:     p.Cargo,
			Role:      role,
			CreatedAt: p.CreatedAt,
		})
	}
	return usuarios, nil
}

// AtribuirRole grava (upsert) o role efetivo de um usuário.
func (uc *UseCase) AtribuirRole(ctx context.Context, actor entity.Actor, userID, role string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if !entity.RoleValido(role) {
		return domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}
	return uc.roleRepo.Upsert(userID, role)
}
