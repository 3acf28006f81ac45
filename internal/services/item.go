package services

import (
	"context"
	"errors"

	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/models"
)

// Error variables
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrItemAlreadyReturned = errors.New("item already returned")
)

// ItemReader defines read-only operations for items.
type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.ItemDB, error)
	List(ctx context.Context, status string) ([]models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, itemName, category, description, itemType, location, contact string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	MarkReturned(ctx context.Context, id int64) (int64, error)
}

// ItemService implements the item lifecycle: create as active, list, get,
// delete, and the one-way active→returned transition.
type ItemService struct {
	reader ItemReader
	writer ItemWriter
}

// NewItemService creates a new ItemService instance.
func NewItemService(reader ItemReader, writer ItemWriter) *ItemService {
	return &ItemService{
		reader: reader,
		writer: writer,
	}
}

// Create persists a new report and returns the full record as stored,
// including the store-assigned id, status and date.
func (svc *ItemService) Create(ctx context.Context, itemName, category, description, itemType, location, contact string) (*models.ItemDB, error) {
	id, err := svc.writer.Save(ctx, itemName, category, description, itemType, location, contact)
	if err != nil {
		logger.Log.Errorw("failed to save item", "err", err)
		return nil, err
	}

	item, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read back created item", "id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	return item, nil
}

// List returns items newest first, optionally filtered by status.
func (svc *ItemService) List(ctx context.Context, status string) ([]models.ItemDB, error) {
	items, err := svc.reader.List(ctx, status)
	if err != nil {
		logger.Log.Errorw("failed to list items", "status", status, "err", err)
		return nil, err
	}
	return items, nil
}

// Get returns a single item by id.
func (svc *ItemService) Get(ctx context.Context, id int64) (*models.ItemDB, error) {
	item, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get item", "id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Delete removes the item regardless of its status.
func (svc *ItemService) Delete(ctx context.Context, id int64) error {
	affected, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "id", id, "err", err)
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// MarkReturned transitions an active item to returned. When the conditional
// update matches nothing, a follow-up read distinguishes a missing item from
// one that has already been returned.
func (svc *ItemService) MarkReturned(ctx context.Context, id int64) error {
	affected, err := svc.writer.MarkReturned(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to mark item returned", "id", id, "err", err)
		return err
	}
	if affected > 0 {
		return nil
	}

	item, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check item after no-op return", "id", id, "err", err)
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	return ErrItemAlreadyReturned
}
