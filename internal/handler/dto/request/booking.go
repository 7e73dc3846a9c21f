package request

import (
	"github.com/manojshendge/gym-class-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClassID uuid.UUID `json:"class_id" binding:"required"`
	SlotID  uuid.UUID `json:"slot_id" binding:"required"`
	Date    string    `json:"date" binding:"required"`
}

func (r CreateBookingRequest) ParseDate() (booking.Date, error) {
	return booking.ParseDate(r.Date)
}
