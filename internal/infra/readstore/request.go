package readstore

import (
	"context"
	"errors"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	const query = `
		SELECT id, description, created
		FROM item_requests
		WHERE id = $1
	`

	var view queries.RequestView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Description, &view.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by id", err)
	}

	if err := r.attachAnswers(ctx, []*queries.RequestView{&view}); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *RequestReadStore) FindByRequester(ctx context.Context, requesterID int64) ([]*queries.RequestView, error) {
	const query = `
		SELECT id, description, created
		FROM item_requests
		WHERE requester_id = $1
		ORDER BY created DESC
	`

	return r.queryRequestViews(ctx, query, requesterID)
}

func (r *RequestReadStore) FindAllOthers(ctx context.Context, requesterID int64) ([]*queries.RequestView, error) {
	const query = `
		SELECT id, description, created
		FROM item_requests
		WHERE requester_id <> $1
		ORDER BY created DESC
	`

	return r.queryRequestViews(ctx, query, requesterID)
}

func (r *RequestReadStore) queryRequestViews(ctx context.Context, query string, args ...any) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query item requests", err)
	}
	defer rows.Close()

	views := []*queries.RequestView{}
	for rows.Next() {
		var view queries.RequestView
		if err := rows.Scan(&view.ID, &view.Description, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item request views", err)
	}

	if err := r.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachAnswers loads the items published in response to each request in a
// single batch instead of one query per request.
func (r *RequestReadStore) attachAnswers(ctx context.Context, views []*queries.RequestView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(views))
	byID := make(map[int64]*queries.RequestView, len(views))
	for _, view := range views {
		view.Items = []*queries.RequestAnswer{}
		ids = append(ids, view.ID)
		byID[view.ID] = view
	}

	const query = `
		SELECT request_id, id, name, owner_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query request answers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			requestID int64
			answer    queries.RequestAnswer
		)
		if err := rows.Scan(&requestID, &answer.ItemID, &answer.Name, &answer.OwnerID); err != nil {
			return infra.WrapRepoErr("failed to scan request answer", err)
		}
		if view, ok := byID[requestID]; ok {
			view.Items = append(view.Items, &answer)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate request answers", err)
	}
	return nil
}
