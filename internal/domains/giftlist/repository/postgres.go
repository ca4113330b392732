package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftlist-backend/internal/domains/giftlist"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) giftlist.Repository {
	return &postgresRepository{pool: pool}
}

// ========================================
// LISTS
// ========================================

func (r *postgresRepository) CreateList(ctx context.Context, list *giftlist.GiftList) (uuid.UUID, error) {
	query := `
		INSERT INTO gift_lists (celebrant_id, name, slug, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, list.CelebrantID, list.Name, list.Slug, list.ImageURL).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, giftlist.ErrSlugTaken
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *postgresRepository) FindOwned(ctx context.Context, celebrantID uuid.UUID) ([]giftlist.ListWithItems, error) {
	query := `
		SELECT id, celebrant_id, name, slug, image_url, deleted_at, created_at, updated_at
		FROM gift_lists
		WHERE celebrant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, celebrantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []giftlist.ListWithItems
	for rows.Next() {
		var list giftlist.GiftList
		if err := scanList(rows, &list); err != nil {
			return nil, err
		}
		result = append(result, giftlist.ListWithItems{List: list})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.FindItems(ctx, result[i].List.ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}

	return result, nil
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*giftlist.GiftList, error) {
	query := `
		SELECT id, celebrant_id, name, slug, image_url, deleted_at, created_at, updated_at
		FROM gift_lists
		WHERE slug = $1 AND deleted_at IS NULL
	`
	return r.scanOneList(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresRepository) FindOwnedBySlug(ctx context.Context, slug string, celebrantID uuid.UUID) (*giftlist.GiftList, error) {
	query := `
		SELECT id, celebrant_id, name, slug, image_url, deleted_at, created_at, updated_at
		FROM gift_lists
		WHERE slug = $1 AND celebrant_id = $2 AND deleted_at IS NULL
	`
	return r.scanOneList(r.pool.QueryRow(ctx, query, slug, celebrantID))
}

func (r *postgresRepository) UpdateList(ctx context.Context, list *giftlist.GiftList) error {
	query := `
		UPDATE gift_lists
		SET name = $2, image_url = $3, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := r.pool.Exec(ctx, query, list.ID, list.Name, list.ImageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return giftlist.ErrNotFound
	}

	return nil
}

func (r *postgresRepository) SoftDeleteList(ctx context.Context, listID, celebrantID uuid.UUID) error {
	query := `
		UPDATE gift_lists
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND celebrant_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.pool.Exec(ctx, query, listID, celebrantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return giftlist.ErrNotFound
	}

	return nil
}

// ========================================
// ITEMS
// ========================================

func (r *postgresRepository) CreateItem(ctx context.Context, item *giftlist.GiftItem) (uuid.UUID, error) {
	query := `
		INSERT INTO gift_items (list_id, name, description, url, preference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		item.ListID, item.Name, item.Description, item.URL, item.Preference,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *postgresRepository) FindItems(ctx context.Context, listID uuid.UUID) ([]giftlist.GiftItem, error) {
	query := `
		SELECT id, list_id, name, description, url, preference, status, deleted_at, created_at, updated_at
		FROM gift_items
		WHERE list_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []giftlist.GiftItem
	for rows.Next() {
		var item giftlist.GiftItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *postgresRepository) FindItemsWithClaims(ctx context.Context, listID uuid.UUID) ([]giftlist.ItemWithClaim, error) {
	query := `
		SELECT gi.id, gi.list_id, gi.name, gi.description, gi.url, gi.preference,
		       gi.status, gi.deleted_at, gi.created_at, gi.updated_at,
		       c.guest_access_id
		FROM gift_items gi
		LEFT JOIN claims c ON c.item_id = gi.id
		WHERE gi.list_id = $1 AND gi.deleted_at IS NULL
		ORDER BY gi.created_at
	`

	rows, err := r.pool.Query(ctx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []giftlist.ItemWithClaim
	for rows.Next() {
		var item giftlist.GiftItem
		var claimedBy *uuid.UUID
		err := rows.Scan(
			&item.ID, &item.ListID, &item.Name, &item.Description, &item.URL,
			&item.Preference, &item.Status, &item.DeletedAt, &item.CreatedAt, &item.UpdatedAt,
			&claimedBy,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, giftlist.ItemWithClaim{Item: item, ClaimedBy: claimedBy})
	}

	return items, rows.Err()
}

func (r *postgresRepository) FindOwnedItem(ctx context.Context, itemID, celebrantID uuid.UUID) (*giftlist.GiftItem, error) {
	query := `
		SELECT gi.id, gi.list_id, gi.name, gi.description, gi.url, gi.preference,
		       gi.status, gi.deleted_at, gi.created_at, gi.updated_at
		FROM gift_items gi
		JOIN gift_lists gl ON gl.id = gi.list_id
		WHERE gi.id = $1 AND gl.celebrant_id = $2
		  AND gi.deleted_at IS NULL AND gl.deleted_at IS NULL
	`

	var item giftlist.GiftItem
	err := scanItem(r.pool.QueryRow(ctx, query, itemID, celebrantID), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, giftlist.ErrNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *postgresRepository) UpdateItem(ctx context.Context, item *giftlist.GiftItem) error {
	query := `
		UPDATE gift_items
		SET name = $2, description = $3, url = $4, preference = $5, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.URL, item.Preference)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return giftlist.ErrNotFound
	}

	return nil
}

// ========================================
// SCAN HELPERS
// ========================================

func (r *postgresRepository) scanOneList(row pgx.Row) (*giftlist.GiftList, error) {
	var list giftlist.GiftList
	if err := scanList(row, &list); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, giftlist.ErrNotFound
		}
		return nil, err
	}
	return &list, nil
}

func scanList(row pgx.Row, list *giftlist.GiftList) error {
	return row.Scan(
		&list.ID, &list.CelebrantID, &list.Name, &list.Slug,
		&list.ImageURL, &list.DeletedAt, &list.CreatedAt, &list.UpdatedAt,
	)
}

func scanItem(row pgx.Row, item *giftlist.GiftItem) error {
	return row.Scan(
		&item.ID, &item.ListID, &item.Name, &item.Description, &item.URL,
		&item.Preference, &item.Status, &item.DeletedAt, &item.CreatedAt, &item.UpdatedAt,
	)
}
