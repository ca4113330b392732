package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftlist-backend/internal/domains/celebrant"
	"giftlist-backend/internal/shared/apperror"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) celebrant.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *celebrant.Celebrant) (uuid.UUID, error) {
	query := `
		INSERT INTO celebrants (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, c.Email, c.PasswordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, apperror.ErrEmailAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*celebrant.Celebrant, error) {
	query := `
		SELECT id, email, password_hash, refresh_token, created_at, updated_at
		FROM celebrants
		WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*celebrant.Celebrant, error) {
	query := `
		SELECT id, email, password_hash, refresh_token, created_at, updated_at
		FROM celebrants
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error {
	query := `
		UPDATE celebrants
		SET refresh_token = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, refreshToken)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return celebrant.ErrNotFound
	}

	return nil
}

func (r *postgresRepository) scanOne(row pgx.Row) (*celebrant.Celebrant, error) {
	var c celebrant.Celebrant
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.RefreshToken, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, celebrant.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
