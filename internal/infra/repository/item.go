package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (int64, error) {
	const query = `
		INSERT INTO items (owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		it.OwnerID(),
		it.Name(),
		it.Description(),
		it.Available(),
		it.RequestID(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err, classify(err))
	}

	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	const query = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, it.ID(), it.Name(), it.Description(), it.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	return nil
}
