package response

import (
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotAvailabilityResponse struct {
	SlotID         uuid.UUID `json:"slotId"`
	ClassID        uuid.UUID `json:"classId"`
	ClassName      string    `json:"className"`
	Category       string    `json:"category"`
	Instructor     string    `json:"instructor"`
	Date           string    `json:"date"`
	DayOfWeek      int32     `json:"dayOfWeek"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Capacity       int32     `json:"capacity"`
	RemainingSeats int32     `json:"remainingSeats"`
}

func FromSlotAvailability(a *queries.SlotAvailability) *SlotAvailabilityResponse {
	return &SlotAvailabilityResponse{
		SlotID:         a.Slot.ID,
		ClassID:        a.ClassID,
		ClassName:      a.ClassName,
		Category:       a.Category,
		Instructor:     a.Instructor,
		Date:           a.Date,
		DayOfWeek:      a.Slot.DayOfWeek,
		StartTime:      a.Slot.StartTime,
		EndTime:        a.Slot.EndTime,
		Capacity:       a.Capacity,
		RemainingSeats: a.RemainingSeats,
	}
}

func FromAvailabilityList(items []*queries.SlotAvailability) []*SlotAvailabilityResponse {
	res := make([]*SlotAvailabilityResponse, len(items))
	for i, it := range items {
		res[i] = FromSlotAvailability(it)
	}
	return res
}
