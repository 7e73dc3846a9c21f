package queries

import (
	"context"
	"sort"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// CatalogReadStore is the read side of the class catalog.
type CatalogReadStore interface {
	ListClasses(ctx context.Context) ([]*ClassView, error)
	FindClassByID(ctx context.Context, id uuid.UUID) (*ClassView, error)
	ListSlotsByWeekday(ctx context.Context, dayOfWeek int32) ([]*SlotWithClass, error)
}

// BookingCounter exposes the confirmed-booking counts the availability
// projection needs from the ledger.
type BookingCounter interface {
	CountConfirmedByDate(ctx context.Context, date booking.Date) (map[uuid.UUID]int32, error)
}

// SlotWithClass is a schedule slot joined with its owning class, the raw
// material of the availability projection.
type SlotWithClass struct {
	Slot       SlotView
	ClassID    uuid.UUID
	ClassName  string
	Category   string
	Instructor string
	// Effective capacity: slot override or class default, resolved at read time.
	Capacity int32
}

type AvailabilityQueries interface {
	ResolveForDate(ctx context.Context, date booking.Date) ([]*SlotAvailability, error)
	ResolveForClass(ctx context.Context, classID uuid.UUID, date booking.Date) ([]*SlotAvailability, error)
}

type availabilityQueriesImpl struct {
	catalog CatalogReadStore
	ledger  BookingCounter
}

func NewAvailabilityQueries(catalog CatalogReadStore, ledger BookingCounter) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog: catalog,
		ledger:  ledger,
	}
}

// ResolveForDate projects the weekly schedule onto one calendar date and
// annotates every matching slot with remaining seats. No caching: the
// ledger is re-scanned per call, which keeps the projection trivially
// consistent at the query volumes a single gym sees.
func (q *availabilityQueriesImpl) ResolveForDate(ctx context.Context, date booking.Date) ([]*SlotAvailability, error) {
	slots, err := q.catalog.ListSlotsByWeekday(ctx, int32(date.Weekday()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	counts, err := q.ledger.CountConfirmedByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := make([]*SlotAvailability, 0, len(slots))
	for _, sc := range slots {
		result = append(result, projectSlot(sc, date, counts[sc.Slot.ID]))
	}

	sortAvailability(result)
	return result, nil
}

func (q *availabilityQueriesImpl) ResolveForClass(ctx context.Context, classID uuid.UUID, date booking.Date) ([]*SlotAvailability, error) {
	if _, err := q.catalog.FindClassByID(ctx, classID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	all, err := q.ResolveForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	result := make([]*SlotAvailability, 0, len(all))
	for _, a := range all {
		if a.ClassID == classID {
			result = append(result, a)
		}
	}
	return result, nil
}

func projectSlot(sc *SlotWithClass, date booking.Date, booked int32) *SlotAvailability {
	remaining := sc.Capacity - booked
	if remaining < 0 {
		remaining = 0
	}

	return &SlotAvailability{
		Slot:           sc.Slot,
		ClassID:        sc.ClassID,
		ClassName:      sc.ClassName,
		Category:       sc.Category,
		Instructor:     sc.Instructor,
		Date:           date.String(),
		Capacity:       sc.Capacity,
		RemainingSeats: remaining,
	}
}

// Deterministic ordering for stable UI and testability: class name, then
// start time, then slot ID as the final tiebreaker.
func sortAvailability(items []*SlotAvailability) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].ClassName != items[j].ClassName {
			return items[i].ClassName < items[j].ClassName
		}
		if items[i].Slot.StartTime != items[j].Slot.StartTime {
			return items[i].Slot.StartTime < items[j].Slot.StartTime
		}
		return items[i].Slot.ID.String() < items[j].Slot.ID.String()
	})
}
