package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/models"
)

// ItemReadRepository handles item read operations.
type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// GetByID returns the item with the given id, or nil if no such row exists.
func (r *ItemReadRepository) GetByID(ctx context.Context, id int64) (*models.ItemDB, error) {
	const query = `
		SELECT id, itemName, category, description, type, location, contact, status, date
		FROM items
		WHERE id = ?
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, id)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// List returns items ordered by creation date, most recent first, optionally
// filtered by status. The id tie-break keeps same-second inserts ordered.
func (r *ItemReadRepository) List(ctx context.Context, status string) ([]models.ItemDB, error) {
	query := `
		SELECT id, itemName, category, description, type, location, contact, status, date
		FROM items
	`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY date DESC, id DESC`

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// ItemWriteRepository handles item write operations.
type ItemWriteRepository struct {
	db *sqlx.DB
}

func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Save inserts a new item row and returns its id. The status and date
// columns are filled by the schema defaults ('active', CURRENT_TIMESTAMP).
func (r *ItemWriteRepository) Save(ctx context.Context, itemName, category, description, itemType, location, contact string) (int64, error) {
	const query = `
		INSERT INTO items (itemName, category, description, type, location, contact)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	args := []any{itemName, category, description, itemType, location, contact}

	res, err := r.db.ExecContext(ctx, query, args...)

	var id int64
	if res != nil {
		id, _ = res.LastInsertId()
	}

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"id", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes the item row unconditionally and reports how many rows
// were affected; zero means no such item existed.
func (r *ItemWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM items WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)

	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("item query",
		"query", query,
		"args", []any{id},
		"affected", affected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return affected, nil
}

// MarkReturned flips an active item to returned. The conditional UPDATE is
// a single atomic statement, so the active→returned transition happens at
// most once even under concurrent calls. Zero affected rows means the item
// is missing or already returned; the caller disambiguates.
func (r *ItemWriteRepository) MarkReturned(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE items SET status = 'returned' WHERE id = ? AND status = 'active'`

	res, err := r.db.ExecContext(ctx, query, id)

	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("item query",
		"query", query,
		"args", []any{id},
		"affected", affected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return affected, nil
}
