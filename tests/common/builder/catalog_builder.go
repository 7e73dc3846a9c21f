//go:build unit || e2e

package builder

import (
	domclass "github.com/manojshendge/gym-class-booking/internal/domain/gymclass"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClassBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    domclass.Category
	Instructor  string
	DurationMin int
	Capacity    int
}

func NewClassBuilder() *ClassBuilder {
	return &ClassBuilder{
		ID:          uuid.New(),
		Name:        "Power Yoga",
		Description: "Dynamic flow for strength and balance",
		Category:    domclass.CategoryMindBody,
		Instructor:  "Maya Rodriguez",
		DurationMin: 60,
		Capacity:    20,
	}
}

func (b *ClassBuilder) With(mutate func(*ClassBuilder)) *ClassBuilder {
	mutate(b)
	return b
}

func (b *ClassBuilder) BuildDomain() (*domclass.GymClass, error) {
	return domclass.NewGymClass(b.ID, b.Name, b.Description, b.Category, b.Instructor, b.DurationMin, b.Capacity)
}

func (b *ClassBuilder) BuildView() *queries.ClassView {
	return &queries.ClassView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Category:    string(b.Category),
		Instructor:  b.Instructor,
		DurationMin: int32(b.DurationMin),
		Capacity:    int32(b.Capacity),
		Slots:       []queries.SlotView{},
	}
}

type SlotBuilder struct {
	ID       uuid.UUID
	ClassID  uuid.UUID
	Weekday  int
	Start    string
	End      string
	Capacity *int
}

func NewSlotBuilder(classID uuid.UUID) *SlotBuilder {
	return &SlotBuilder{
		ID:      uuid.New(),
		ClassID: classID,
		Weekday: 1, // Monday
		Start:   "10:00",
		End:     "11:00",
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithCapacity(capacity int) *SlotBuilder {
	b.Capacity = &capacity
	return b
}

func (b *SlotBuilder) BuildDomain() (*domclass.ScheduleSlot, error) {
	start, err := domclass.ParseTimeOfDay(b.Start)
	if err != nil {
		return nil, err
	}
	end, err := domclass.ParseTimeOfDay(b.End)
	if err != nil {
		return nil, err
	}
	return domclass.NewScheduleSlot(b.ID, b.ClassID, b.Weekday, start, end, b.Capacity)
}

func (b *SlotBuilder) BuildView() queries.SlotView {
	var capacity *int32
	if b.Capacity != nil {
		v := int32(*b.Capacity)
		capacity = &v
	}
	return queries.SlotView{
		ID:        b.ID,
		ClassID:   b.ClassID,
		DayOfWeek: int32(b.Weekday),
		StartTime: b.Start,
		EndTime:   b.End,
		Capacity:  capacity,
	}
}

func (b *SlotBuilder) BuildSlotWithClass(class *ClassBuilder) *queries.SlotWithClass {
	effective := class.Capacity
	if b.Capacity != nil {
		effective = *b.Capacity
	}
	return &queries.SlotWithClass{
		Slot:       b.BuildView(),
		ClassID:    class.ID,
		ClassName:  class.Name,
		Category:   string(class.Category),
		Instructor: class.Instructor,
		Capacity:   int32(effective),
	}
}
