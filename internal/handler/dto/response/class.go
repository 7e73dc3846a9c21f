package response

import (
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClassResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Instructor  string         `json:"instructor"`
	DurationMin int32          `json:"durationMin"`
	Capacity    int32          `json:"capacity"`
	Slots       []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	ClassID   uuid.UUID `json:"classId"`
	DayOfWeek int32     `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Capacity  *int32    `json:"capacity,omitempty"`
}

func FromClassView(v *queries.ClassView) (*ClassResponse, error) {
	var resp ClassResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromClassList(views []*queries.ClassView) ([]*ClassResponse, error) {
	res := make([]*ClassResponse, len(views))
	for i, v := range views {
		resp, err := FromClassView(v)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}

func FromSlotList(views []queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(views))
	for i, v := range views {
		res[i] = &SlotResponse{
			ID:        v.ID,
			ClassID:   v.ClassID,
			DayOfWeek: v.DayOfWeek,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
			Capacity:  v.Capacity,
		}
	}
	return res
}
