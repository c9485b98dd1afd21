package repository

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *request.ItemRequest) (int64, error) {
	const query = `
		INSERT INTO requests (requester_id, description, created)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		req.RequesterID(),
		req.Description(),
		req.Created(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item request", err, classify(err))
	}

	return id, nil
}
