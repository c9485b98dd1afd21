package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestQueries interface {
	GetByID(ctx context.Context, id int64) (*RequestView, error)
	// ListOwn returns the caller's requests, newest first, with the items
	// listed in answer to each request.
	ListOwn(ctx context.Context, requesterID int64) ([]*RequestView, error)
	ListOthers(ctx context.Context, requesterID int64) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id int64) (*RequestView, error) {
	view, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID int64) ([]*RequestView, error) {
	if _, err := q.users.FindByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return q.requests.FindByRequester(ctx, requesterID)
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID int64) ([]*RequestView, error) {
	return q.requests.FindAllOthers(ctx, requesterID)
}
