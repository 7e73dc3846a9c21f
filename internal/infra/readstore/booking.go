package readstore

import (
	"context"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/infra/repository"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db repository.DBTX
}

func NewBookingReadStore(db repository.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSelect = `
	SELECT b.id, b.user_id, b.class_id, c.name,
	       b.schedule_slot_id, s.day_of_week,
	       to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'),
	       to_char(b.booking_date, 'YYYY-MM-DD'),
	       b.status, b.created_at, b.updated_at
	FROM bookings b
	JOIN classes c ON c.id = b.class_id
	JOIN schedule_slots s ON s.id = b.schedule_slot_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSelect+" WHERE b.id = $1", id)

	view, err := scanBookingViewRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+" WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id DESC", userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingView, error) {
		return scanBookingViewRow(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return views, nil
}

// CountConfirmedByDate returns confirmed counts per slot for the date in a
// single scan; the availability projection folds them into remaining seats.
func (r *BookingReadStore) CountConfirmedByDate(ctx context.Context, date booking.Date) (map[uuid.UUID]int32, error) {
	query := `
		SELECT schedule_slot_id, COUNT(*)
		FROM bookings
		WHERE booking_date = $1::date AND status = 'confirmed'
		GROUP BY schedule_slot_id
	`
	rows, err := r.db.Query(ctx, query, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by date", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int32)
	for rows.Next() {
		var slotID uuid.UUID
		var count int32
		if err := rows.Scan(&slotID, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking count", err)
		}
		counts[slotID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking counts", err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingViewRow(row rowScanner) (*queries.BookingView, error) {
	var (
		v         queries.BookingView
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&v.ID, &v.UserID, &v.ClassID, &v.ClassName,
		&v.SlotID, &v.DayOfWeek,
		&v.StartTime, &v.EndTime,
		&v.Date,
		&v.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = createdAt
	v.UpdatedAt = updatedAt
	return &v, nil
}
