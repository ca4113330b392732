package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftlist-backend/internal/domains/guest"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) guest.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Upsert(ctx context.Context, listID uuid.UUID, email, language string) (*guest.GuestAccess, error) {
	query := `
		INSERT INTO guest_accesses (list_id, email, language)
		VALUES ($1, $2, $3)
		ON CONFLICT (list_id, email)
		DO UPDATE SET language = EXCLUDED.language, updated_at = now()
		RETURNING id, list_id, email, language, created_at, updated_at
	`

	var access guest.GuestAccess
	err := r.pool.QueryRow(ctx, query, listID, email, language).Scan(
		&access.ID, &access.ListID, &access.Email, &access.Language,
		&access.CreatedAt, &access.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &access, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.GuestAccess, error) {
	query := `
		SELECT id, list_id, email, language, created_at, updated_at
		FROM guest_accesses
		WHERE id = $1
	`

	var access guest.GuestAccess
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&access.ID, &access.ListID, &access.Email, &access.Language,
		&access.CreatedAt, &access.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, guest.ErrNotFound
		}
		return nil, err
	}

	return &access, nil
}
