package response

import (
	"time"

	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ClassID   uuid.UUID `json:"classId"`
	ClassName string    `json:"className"`
	SlotID    uuid.UUID `json:"slotId"`
	DayOfWeek int32     `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		ClassID:   v.ClassID,
		ClassName: v.ClassName,
		SlotID:    v.SlotID,
		DayOfWeek: v.DayOfWeek,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Date:      v.Date,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}
