package readstore

import (
	"context"

	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/infra/repository"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db repository.DBTX
}

func NewCatalogReadStore(db repository.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

// ListClasses returns every class with its weekly slots nested, ordered by
// class name for a stable display.
func (r *CatalogReadStore) ListClasses(ctx context.Context) ([]*queries.ClassView, error) {
	classQuery := `
		SELECT id, name, description, category, instructor, duration_min, capacity
		FROM classes
		ORDER BY name, id
	`
	rows, err := r.db.Query(ctx, classQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes", err)
	}

	classes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ClassView, error) {
		var v queries.ClassView
		err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Category, &v.Instructor, &v.DurationMin, &v.Capacity)
		return &v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan classes", err)
	}

	slots, err := r.listAllSlots(ctx)
	if err != nil {
		return nil, err
	}

	byClass := make(map[uuid.UUID][]queries.SlotView, len(classes))
	for _, s := range slots {
		byClass[s.ClassID] = append(byClass[s.ClassID], s)
	}
	for _, c := range classes {
		c.Slots = byClass[c.ID]
		if c.Slots == nil {
			c.Slots = []queries.SlotView{}
		}
	}

	return classes, nil
}

func (r *CatalogReadStore) FindClassByID(ctx context.Context, id uuid.UUID) (*queries.ClassView, error) {
	query := `
		SELECT id, name, description, category, instructor, duration_min, capacity
		FROM classes
		WHERE id = $1
	`
	var v queries.ClassView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.Category, &v.Instructor, &v.DurationMin, &v.Capacity,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find class by ID", err)
	}

	slots, err := r.ListSlotsByClassID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Slots = slots

	return &v, nil
}

func (r *CatalogReadStore) ListSlotsByClassID(ctx context.Context, classID uuid.UUID) ([]queries.SlotView, error) {
	query := `
		SELECT id, class_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), capacity
		FROM schedule_slots
		WHERE class_id = $1
		ORDER BY day_of_week, start_time, id
	`
	rows, err := r.db.Query(ctx, query, classID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots for class", err)
	}

	slots, err := pgx.CollectRows(rows, scanSlotView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan slots", err)
	}
	return slots, nil
}

// ListSlotsByWeekday joins each slot with its owning class and resolves the
// effective capacity (slot override or class default) in the query.
func (r *CatalogReadStore) ListSlotsByWeekday(ctx context.Context, dayOfWeek int32) ([]*queries.SlotWithClass, error) {
	query := `
		SELECT s.id, s.class_id, s.day_of_week,
		       to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'), s.capacity,
		       c.name, c.category, c.instructor,
		       COALESCE(s.capacity, c.capacity) AS effective_capacity
		FROM schedule_slots s
		JOIN classes c ON c.id = s.class_id
		WHERE s.day_of_week = $1
		ORDER BY c.name, s.start_time, s.id
	`
	rows, err := r.db.Query(ctx, query, dayOfWeek)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots for weekday", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.SlotWithClass, error) {
		var sc queries.SlotWithClass
		err := row.Scan(
			&sc.Slot.ID, &sc.Slot.ClassID, &sc.Slot.DayOfWeek,
			&sc.Slot.StartTime, &sc.Slot.EndTime, &sc.Slot.Capacity,
			&sc.ClassName, &sc.Category, &sc.Instructor,
			&sc.Capacity,
		)
		sc.ClassID = sc.Slot.ClassID
		return &sc, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan weekday slots", err)
	}
	return result, nil
}

func (r *CatalogReadStore) listAllSlots(ctx context.Context) ([]queries.SlotView, error) {
	query := `
		SELECT id, class_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), capacity
		FROM schedule_slots
		ORDER BY day_of_week, start_time, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}

	slots, err := pgx.CollectRows(rows, scanSlotView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan slots", err)
	}
	return slots, nil
}

func scanSlotView(row pgx.CollectableRow) (queries.SlotView, error) {
	var v queries.SlotView
	err := row.Scan(&v.ID, &v.ClassID, &v.DayOfWeek, &v.StartTime, &v.EndTime, &v.Capacity)
	return v, err
}
