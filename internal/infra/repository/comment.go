package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *item.Comment) (int64, error) {
	const query = `
		INSERT INTO comments (item_id, author_id, text, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		c.ItemID(),
		c.AuthorID(),
		c.Text(),
		c.Created(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err, classify(err))
	}

	return id, nil
}
