package queries

import (
	"context"

	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListClasses(ctx context.Context) ([]*ClassView, error)
	GetClass(ctx context.Context, id uuid.UUID) (*ClassView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListClasses(ctx context.Context) ([]*ClassView, error) {
	classes, err := q.store.ListClasses(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return classes, nil
}

func (q *catalogQueriesImpl) GetClass(ctx context.Context, id uuid.UUID) (*ClassView, error) {
	class, err := q.store.FindClassByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return class, nil
}
