package gymclass

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("class name cannot be empty")
	ErrInvalidDuration   = errors.New("class duration must be positive")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidWeekday    = errors.New("day of week must be between 0 and 6")
	ErrSlotTimesInverted = errors.New("slot start time must be before end time")
)

// GymClass is a program offered by the gym. The booking module treats it as
// immutable; administrative tooling owns writes.
type GymClass struct {
	id          uuid.UUID
	name        string
	description string
	category    Category
	instructor  string
	durationMin int
	capacity    int
}

func NewGymClass(id uuid.UUID, name, description string, category Category, instructor string, durationMin, capacity int) (*GymClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &GymClass{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		instructor:  instructor,
		durationMin: durationMin,
		capacity:    capacity,
	}, nil
}

func (g *GymClass) ID() uuid.UUID       { return g.id }
func (g *GymClass) Name() string        { return g.name }
func (g *GymClass) Description() string { return g.description }
func (g *GymClass) Category() Category  { return g.category }
func (g *GymClass) Instructor() string  { return g.instructor }
func (g *GymClass) DurationMin() int    { return g.durationMin }
func (g *GymClass) Capacity() int       { return g.capacity }

// ScheduleSlot is a recurring weekly window in which its class runs.
type ScheduleSlot struct {
	id       uuid.UUID
	classID  uuid.UUID
	weekday  time.Weekday
	start    TimeOfDay
	end      TimeOfDay
	capacity *int // overrides the class capacity when set
}

func NewScheduleSlot(id, classID uuid.UUID, weekday int, start, end TimeOfDay, capacity *int) (*ScheduleSlot, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return nil, ErrSlotTimesInverted
	}
	if capacity != nil && *capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &ScheduleSlot{
		id:       id,
		classID:  classID,
		weekday:  time.Weekday(weekday),
		start:    start,
		end:      end,
		capacity: capacity,
	}, nil
}

func (s *ScheduleSlot) ID() uuid.UUID         { return s.id }
func (s *ScheduleSlot) ClassID() uuid.UUID    { return s.classID }
func (s *ScheduleSlot) Weekday() time.Weekday { return s.weekday }
func (s *ScheduleSlot) Start() TimeOfDay      { return s.start }
func (s *ScheduleSlot) End() TimeOfDay        { return s.end }

func (s *ScheduleSlot) CapacityOverride() *int {
	if s.capacity == nil {
		return nil
	}
	v := *s.capacity
	return &v
}

// EffectiveCapacity is the slot's own capacity when set, otherwise the
// parent class's default.
func (s *ScheduleSlot) EffectiveCapacity(class *GymClass) int {
	if s.capacity != nil {
		return *s.capacity
	}
	return class.Capacity()
}

// BelongsTo reports whether the slot is part of the given class's schedule.
func (s *ScheduleSlot) BelongsTo(classID uuid.UUID) bool {
	return s.classID == classID
}
