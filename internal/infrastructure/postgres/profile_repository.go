package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
	"github.com/seu-usuario/brindes-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação de ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador de perfis.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste o perfil de uma identidade.
func (r *ProfileRepo) Create(p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, nome, cargo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nome, nullable(p.Cargo), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// GetByID obtém um perfil por ID. Devolve nil, nil se não existir.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `SELECT id, nome, cargo, created_at, updated_at FROM profiles WHERE id = $1`
	var p entity.Profile
	var cargo *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Nome, &cargo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Cargo = deref(cargo)
	return &p, nil
}

// List devolve os perfis ordenados por nome.
func (r *ProfileRepo) List() ([]*entity.Profile, error) {
	query := `SELECT id, nome, cargo, created_at, updated_at FROM profiles ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		var cargo *string
		if err := rows.Scan(&p.ID, &p.Nome, &cargo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		p.Cargo = deref(cargo)
		list = append(list, &p)
	}
	return list, rows.Err()
}
