package repository

import (
	"context"

	"github.com/manojshendge/gym-class-booking/internal/domain/gymclass"
	"github.com/manojshendge/gym-class-booking/internal/infra"

	"github.com/google/uuid"
)

// CatalogRepository rehydrates catalog rows into domain entities for
// validation. The booking module never writes to these tables.
type CatalogRepository struct {
	db DBTX
}

func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindClassByID(ctx context.Context, id uuid.UUID) (*gymclass.GymClass, error) {
	query := `
		SELECT id, name, description, category, instructor, duration_min, capacity
		FROM classes
		WHERE id = $1
	`
	var (
		classID                                 uuid.UUID
		name, description, category, instructor string
		durationMin, capacity                   int
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&classID, &name, &description, &category, &instructor, &durationMin, &capacity,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find class by ID", err)
	}

	class, err := gymclass.NewGymClass(classID, name, description, gymclass.Category(category), instructor, durationMin, capacity)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid class row", err, infra.KindDBFailure)
	}
	return class, nil
}

func (r *CatalogRepository) FindSlotByID(ctx context.Context, id uuid.UUID) (*gymclass.ScheduleSlot, error) {
	query := `
		SELECT id, class_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), capacity
		FROM schedule_slots
		WHERE id = $1
	`
	var (
		slotID, classID    uuid.UUID
		dayOfWeek          int
		startStr, endStr   string
		capacityOverride   *int
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slotID, &classID, &dayOfWeek, &startStr, &endStr, &capacityOverride,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	start, err := gymclass.ParseTimeOfDay(startStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot start time", err, infra.KindDBFailure)
	}
	end, err := gymclass.ParseTimeOfDay(endStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot end time", err, infra.KindDBFailure)
	}

	slot, err := gymclass.NewScheduleSlot(slotID, classID, dayOfWeek, start, end, capacityOverride)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot row", err, infra.KindDBFailure)
	}
	return slot, nil
}
