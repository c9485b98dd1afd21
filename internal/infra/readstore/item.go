package readstore

import (
	"context"
	"errors"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	const query = `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE id = $1
	`

	view, err := scanItemView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return view, nil
}

func (r *ItemReadStore) FindAllByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemView, error) {
	const query = `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE owner_id = $1
		ORDER BY id ASC
	`

	return r.queryItemViews(ctx, query, ownerID)
}

func (r *ItemReadStore) Search(ctx context.Context, text string) ([]*queries.ItemView, error) {
	const query = `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id ASC
	`

	return r.queryItemViews(ctx, query, text)
}

func (r *ItemReadStore) CommentsForItem(ctx context.Context, itemID int64) ([]*queries.CommentView, error) {
	const query = `
		SELECT c.id, u.name, c.text, c.item_id, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created ASC
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query comments", err)
	}
	defer rows.Close()

	comments := []*queries.CommentView{}
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.AuthorName, &view.Text, &view.ItemID, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment view", err)
		}
		comments = append(comments, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment views", err)
	}
	return comments, nil
}

func (r *ItemReadStore) CommentByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	const query = `
		SELECT c.id, u.name, c.text, c.item_id, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`

	var view queries.CommentView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.AuthorName, &view.Text, &view.ItemID, &view.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find comment by id", err)
	}
	return &view, nil
}

func (r *ItemReadStore) queryItemViews(ctx context.Context, query string, args ...any) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query items", err)
	}
	defer rows.Close()

	views := []*queries.ItemView{}
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item views", err)
	}
	return views, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var view queries.ItemView
	err := row.Scan(&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
