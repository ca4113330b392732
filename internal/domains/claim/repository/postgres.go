package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftlist-backend/internal/domains/claim"
	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/pkg/database"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) claim.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ClaimItem(ctx context.Context, itemID, guestAccessID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Lock the item row first. Every concurrent claim, unclaim, and
		// removal on this item queues behind this lock.
		var status string
		var listID uuid.UUID
		var deletedAt *time.Time
		err := tx.QueryRow(ctx,
			`SELECT status, list_id, deleted_at FROM gift_items WHERE id = $1 FOR UPDATE`,
			itemID,
		).Scan(&status, &listID, &deletedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperror.ErrItemNotFound
			}
			return err
		}
		if deletedAt != nil {
			return apperror.ErrItemNotFound
		}

		// A guest session is scoped to the list it was granted on.
		var accessListID uuid.UUID
		err = tx.QueryRow(ctx,
			`SELECT list_id FROM guest_accesses WHERE id = $1`,
			guestAccessID,
		).Scan(&accessListID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperror.ErrUnauthorizedGuest
			}
			return err
		}
		if accessListID != listID {
			return apperror.ErrUnauthorizedGuest
		}

		if status == "CLAIMED" {
			return apperror.ErrItemAlreadyClaimed
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO claims (item_id, guest_access_id) VALUES ($1, $2)`,
			itemID, guestAccessID,
		)
		if err != nil {
			// The primary key on claims.item_id backstops the row lock; a
			// violation here is still just "already claimed".
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return apperror.ErrItemAlreadyClaimed
			}
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE gift_items SET status = 'CLAIMED', updated_at = now() WHERE id = $1`,
			itemID,
		)
		return err
	})
}

func (r *postgresRepository) UnclaimItem(ctx context.Context, itemID, guestAccessID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var deletedAt *time.Time
		err := tx.QueryRow(ctx,
			`SELECT deleted_at FROM gift_items WHERE id = $1 FOR UPDATE`,
			itemID,
		).Scan(&deletedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperror.ErrItemNotFound
			}
			return err
		}
		if deletedAt != nil {
			return apperror.ErrItemNotFound
		}

		var claimedBy uuid.UUID
		err = tx.QueryRow(ctx,
			`SELECT guest_access_id FROM claims WHERE item_id = $1`,
			itemID,
		).Scan(&claimedBy)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperror.ErrItemNotClaimed
			}
			return err
		}
		if claimedBy != guestAccessID {
			return apperror.ErrNotClaimedByYou
		}

		if _, err := tx.Exec(ctx, `DELETE FROM claims WHERE item_id = $1`, itemID); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE gift_items SET status = 'AVAILABLE', updated_at = now() WHERE id = $1`,
			itemID,
		)
		return err
	})
}

func (r *postgresRepository) RemoveItem(ctx context.Context, itemID, celebrantID uuid.UUID) (*claim.RemovedItem, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*claim.RemovedItem, error) {
		removed := &claim.RemovedItem{}

		var status string
		err := tx.QueryRow(ctx, `
			SELECT gi.name, gi.status, gl.name
			FROM gift_items gi
			JOIN gift_lists gl ON gl.id = gi.list_id
			WHERE gi.id = $1 AND gl.celebrant_id = $2
			  AND gi.deleted_at IS NULL AND gl.deleted_at IS NULL
			FOR UPDATE OF gi`,
			itemID, celebrantID,
		).Scan(&removed.ItemName, &status, &removed.ListName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperror.ErrItemNotFound
			}
			return nil, err
		}

		if status == "CLAIMED" {
			// Capture the guest's address before the item vanishes; the
			// worker only sees this snapshot.
			err := tx.QueryRow(ctx, `
				SELECT ga.email, ga.language
				FROM claims c
				JOIN guest_accesses ga ON ga.id = c.guest_access_id
				WHERE c.item_id = $1`,
				itemID,
			).Scan(&removed.GuestEmail, &removed.Language)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			removed.WasClaimed = err == nil
		}

		_, err = tx.Exec(ctx,
			`UPDATE gift_items SET deleted_at = now(), updated_at = now() WHERE id = $1`,
			itemID,
		)
		if err != nil {
			return nil, err
		}

		return removed, nil
	})
}
