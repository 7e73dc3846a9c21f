package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/domain/gymclass"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/pkg/clock"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReserveBookingParams struct {
	UserID  uuid.UUID
	ClassID uuid.UUID
	SlotID  uuid.UUID
	Date    booking.Date
}

type BookingCommands interface {
	Reserve(ctx context.Context, params ReserveBookingParams) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, requesterID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	db             TxBeginner
	clock          clock.Clock
	cancelCutoff   time.Duration
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	db TxBeginner,
	clock clock.Clock,
	cancelCutoff time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		bookingQueries: bookingQueries,
		factory:        factory,
		db:             db,
		clock:          clock,
		cancelCutoff:   cancelCutoff,
	}
}

// Reserve books a seat in one slot occurrence. The capacity check and the
// insert run inside a transaction holding an advisory lock on the
// (slot, date) pair, so concurrent attempts at the last seat are
// serialized: exactly one succeeds, the rest observe ErrClassFull.
func (c *bookingCommandsImpl) Reserve(ctx context.Context, params ReserveBookingParams) (*queries.BookingView, error) {
	slot, class, err := c.validateCatalogRefs(ctx, params.ClassID, params.SlotID)
	if err != nil {
		return nil, err
	}

	entity, err := c.factory.CreateBooking(params.UserID, slot, params.Date)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDateOnWrongWeekday):
			return nil, errs.ErrDateMismatch
		case errors.Is(err, booking.ErrDateInPast):
			return nil, errs.ErrPastDate
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.insertSerialized(ctx, entity, slot.EffectiveCapacity(class)); err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store.
	return c.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (c *bookingCommandsImpl) validateCatalogRefs(ctx context.Context, classID, slotID uuid.UUID) (*gymclass.ScheduleSlot, *gymclass.GymClass, error) {
	class, err := c.catalogRepo.FindClassByID(ctx, classID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrClassNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slot, err := c.catalogRepo.FindSlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrSlotNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !slot.BelongsTo(class.ID()) {
		return nil, nil, errs.ErrSlotClassMismatch
	}

	return slot, class, nil
}

func (c *bookingCommandsImpl) insertSerialized(ctx context.Context, entity *booking.Booking, capacity int) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Debug("booking tx rollback", "error", rollbackErr)
		}
	}()

	if err := c.bookingRepo.AcquireSlotDateLock(ctx, tx, entity.SlotID(), entity.Date()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	booked, err := c.bookingRepo.HasConfirmed(ctx, tx, entity.UserID(), entity.SlotID(), entity.Date())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if booked {
		return errs.ErrAlreadyBooked
	}

	count, err := c.bookingRepo.CountConfirmed(ctx, tx, entity.SlotID(), entity.Date())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if count >= capacity {
		return errs.ErrClassFull
	}

	if err := c.bookingRepo.Insert(ctx, tx, entity); err != nil {
		// The partial unique index backs the duplicate invariant even if the
		// lock path is ever bypassed.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.ErrAlreadyBooked
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Cancel transitions a confirmed booking to cancelled. The row is locked
// for the status check so two racing cancels cannot both succeed.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, requesterID uuid.UUID) (*queries.BookingView, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Debug("cancel tx rollback", "error", rollbackErr)
		}
	}()

	entity, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slot, err := c.catalogRepo.FindSlotByID(ctx, entity.SlotID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slotStart := c.factory.SlotStartOn(slot, entity.Date())
	if err := entity.EnsureCancellable(requesterID, slotStart, c.clock.Now(), c.cancelCutoff); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotOwner):
			return nil, errs.ErrNotBookingOwner
		case errors.Is(err, booking.ErrAlreadyCancelled):
			return nil, errs.ErrAlreadyCancelled
		case errors.Is(err, booking.ErrCancelWindowClosed):
			return nil, errs.ErrCancelWindowClosed
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, booking.StatusCancelled, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}
