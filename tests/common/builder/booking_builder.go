//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/manojshendge/gym-class-booking/internal/domain/booking"
	reqdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/request"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ClassID   uuid.UUID
	ClassName string
	SlotID    uuid.UUID
	DayOfWeek int
	StartTime string
	EndTime   string
	Date      string
	Status    dombooking.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ClassID:   uuid.New(),
		ClassName: "Power Yoga",
		SlotID:    uuid.New(),
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "11:00",
		Date:      "2025-06-09", // a Monday
		Status:    dombooking.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	date, err := dombooking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(b.ID, b.UserID, b.ClassID, b.SlotID, date, b.Status, b.CreatedAt, b.UpdatedAt), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ClassID: b.ClassID,
		SlotID:  b.SlotID,
		Date:    b.Date,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		UserID:    b.UserID,
		ClassID:   b.ClassID,
		ClassName: b.ClassName,
		SlotID:    b.SlotID,
		DayOfWeek: int32(b.DayOfWeek),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Date:      b.Date,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
