package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ClassView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Instructor  string     `json:"instructor"`
	DurationMin int32      `json:"duration_min"`
	Capacity    int32      `json:"capacity"`
	Slots       []SlotView `json:"slots"`
}

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	ClassID   uuid.UUID `json:"class_id"`
	DayOfWeek int32     `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Capacity  *int32    `json:"capacity,omitempty"`
}

// SlotAvailability is one bookable window on a concrete date with the
// seats still open for it.
type SlotAvailability struct {
	Slot           SlotView  `json:"slot"`
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	Category       string    `json:"category"`
	Instructor     string    `json:"instructor"`
	Date           string    `json:"date"`
	Capacity       int32     `json:"capacity"`
	RemainingSeats int32     `json:"remaining_seats"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
	SlotID    uuid.UUID `json:"slot_id"`
	DayOfWeek int32     `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}
