package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementação de RoleRepository sobre PostgreSQL.
// user_roles tem no máximo uma linha por usuário (PK em user_id).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository constrói o adaptador de atribuições de role.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Get devolve o role do usuário, ou "" (sem erro) se não houver atribuição.
func (r *RoleRepo) Get(userID string) (string, error) {
	var role string
	err := r.q.QueryRow(context.Background(), `SELECT role FROM user_roles WHERE user_id = $1`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// Upsert grava o role efetivo do usuário.
func (r *RoleRepo) Upsert(userID, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`
	_, err := r.q.Exec(context.Background(), query, userID, role)
	if err != nil {
		return fmt.Errorf("upsert role: %w", err)
	}
	return nil
}

// ListAll devolve o mapa usuário → role de todas as atribuições.
func (r *RoleRepo) ListAll() (map[string]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT user_id, role FROM user_roles`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	atribuicoes := make(map[string]string)
	for rows.Next() {
		var userID, role string
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		atribuicoes[userID] = role
	}
	return atribuicoes, rows.Err()
}
