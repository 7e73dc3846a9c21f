package queries

import (
	"context"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingReadStore is the view side of the reservation ledger.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	CountConfirmedByDate(ctx context.Context, date booking.Date) (map[uuid.UUID]int32, error)
}

type BookingQueries interface {
	// GetByIDSystem skips the ownership check; used for read-after-write
	// inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != requesterID {
		return nil, errs.ErrNotBookingOwner
	}
	return view, nil
}

// ListForUser returns the user's bookings newest first, cancelled ones
// included; they are retained for history.
func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
