package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/brindes-api/internal/application/dto"
	"github.com/seu-usuario/brindes-api/internal/application/roles"
	"github.com/seu-usuario/brindes-api/internal/domain"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
	"github.com/seu-usuario/brindes-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso do provedor de identidade: cadastro, login,
// troca de senha e provisionamento de usuários pelo admin.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
	resolver    *roles.Resolver
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	roleRepo repository.RoleRepository,
	resolver *roles.Resolver,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		resolver:    resolver,
		jwtCfg:      jwtCfg,
	}
}

// Register cadastro público: hasheia a senha com bcrypt, cria credencial e
// perfil. O role efetivo fica no padrão "usuario" (sem registro em
// user_roles). Devolve ErrEmailAlreadyExists se o email já existir.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.criarUsuario(in.Nome, in.Email, in.Password, "")
}

// CreateUser provisionamento pelo admin: igual ao cadastro, mas grava a
// atribuição de role quando diferente do padrão.
func (uc *AuthUseCase) CreateUser(actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	role := in.Role
	if role != "" && !entity.RoleValido(role) {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleUsuario {
		role = "" // padrão; não precisa de registro em user_roles
	}
	return uc.criarUsuario(in.Nome, in.Email, in.Password, role)
}

func (uc *AuthUseCase) criarUsuario(nome, email, password, role string) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if nome == "" {
		nome = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Status:       "active",
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	profile := &entity.Profile{
		ID:        user.ID,
		Nome:      nome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	if role != "" {
		if err := uc.roleRepo.Upsert(user.ID, role); err != nil {
			return nil, err
		}
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Nome:      nome,
		Email:     user.Email,
		Role:      uc.resolver.Resolve(user.ID),
		CreatedAt: now,
	}, nil
}

// Login verifica email/senha, resolve o role e emite o JWT com o role no
// claim. O role vai no token para as decisões RBAC por requisição.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	role := uc.resolver.Resolve(user.ID)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	nome := user.Email
	if profile, err := uc.profileRepo.GetByID(user.ID); err == nil && profile != nil {
		nome = profile.Nome
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Nome:      nome,
			Email:     user.Email,
			Role:      role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// UpdatePassword troca a senha do próprio usuário autenticado.
func (uc *AuthUseCase) UpdatePassword(actor entity.Actor, newPassword string) error {
	user, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(actor.UserID, string(hash))
}
