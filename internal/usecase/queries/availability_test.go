//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"
	"github.com/manojshendge/gym-class-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReadStore struct {
	mock.Mock
}

func (m *MockCatalogReadStore) ListClasses(ctx context.Context) ([]*queries.ClassView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.ClassView)
	return views, args.Error(1)
}

func (m *MockCatalogReadStore) FindClassByID(ctx context.Context, id uuid.UUID) (*queries.ClassView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.ClassView)
	return view, args.Error(1)
}

func (m *MockCatalogReadStore) ListSlotsByWeekday(ctx context.Context, dayOfWeek int32) ([]*queries.SlotWithClass, error) {
	args := m.Called(ctx, dayOfWeek)
	slots, _ := args.Get(0).([]*queries.SlotWithClass)
	return slots, args.Error(1)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountConfirmedByDate(ctx context.Context, date booking.Date) (map[uuid.UUID]int32, error) {
	args := m.Called(ctx, date)
	counts, _ := args.Get(0).(map[uuid.UUID]int32)
	return counts, args.Error(1)
}

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAvailabilityQueries_ResolveForDate(t *testing.T) {
	ctx := context.Background()
	monday := mustDate(t, "2025-06-09")

	t.Run("remaining seats arithmetic", func(t *testing.T) {
		classB := builder.NewClassBuilder()
		slotB := builder.NewSlotBuilder(classB.ID)
		sc := slotB.BuildSlotWithClass(classB) // capacity 20

		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{sc}, nil)
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{sc.Slot.ID: 12}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.NoError(t, err)
		require.Len(t, result, 1)

		assert.Equal(t, int32(20), result[0].Capacity)
		assert.Equal(t, int32(8), result[0].RemainingSeats)
		assert.Equal(t, "2025-06-09", result[0].Date)
		assert.Equal(t, classB.Name, result[0].ClassName)
	})

	t.Run("remaining never goes negative", func(t *testing.T) {
		classB := builder.NewClassBuilder()
		sc := builder.NewSlotBuilder(classB.ID).WithCapacity(2).BuildSlotWithClass(classB)

		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{sc}, nil)
		// Overbooked ledger state, e.g. after a capacity reduction.
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{sc.Slot.ID: 5}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int32(0), result[0].RemainingSeats)
	})

	t.Run("slot capacity override wins over class default", func(t *testing.T) {
		classB := builder.NewClassBuilder() // class capacity 20
		sc := builder.NewSlotBuilder(classB.ID).WithCapacity(6).BuildSlotWithClass(classB)

		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{sc}, nil)
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int32(6), result[0].Capacity)
		assert.Equal(t, int32(6), result[0].RemainingSeats)
	})

	t.Run("uncounted slots have full capacity free", func(t *testing.T) {
		classB := builder.NewClassBuilder()
		sc := builder.NewSlotBuilder(classB.ID).BuildSlotWithClass(classB)

		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{sc}, nil)
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int32(20), result[0].RemainingSeats)
	})

	t.Run("deterministic ordering", func(t *testing.T) {
		yoga := builder.NewClassBuilder()
		yoga.Name = "Yoga"
		hiit := builder.NewClassBuilder()
		hiit.Name = "HIIT Blast"

		yogaLate := builder.NewSlotBuilder(yoga.ID)
		yogaLate.Start, yogaLate.End = "18:00", "19:00"
		yogaEarly := builder.NewSlotBuilder(yoga.ID)
		yogaEarly.Start, yogaEarly.End = "07:00", "08:00"
		hiitSlot := builder.NewSlotBuilder(hiit.ID)

		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{
			yogaLate.BuildSlotWithClass(yoga),
			yogaEarly.BuildSlotWithClass(yoga),
			hiitSlot.BuildSlotWithClass(hiit),
		}, nil)
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.NoError(t, err)
		require.Len(t, result, 3)

		assert.Equal(t, "HIIT Blast", result[0].ClassName)
		assert.Equal(t, "Yoga", result[1].ClassName)
		assert.Equal(t, "07:00", result[1].Slot.StartTime)
		assert.Equal(t, "Yoga", result[2].ClassName)
		assert.Equal(t, "18:00", result[2].Slot.StartTime)
	})

	t.Run("empty weekday resolves to empty slice", func(t *testing.T) {
		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{}, nil)
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("catalog failure is marked", func(t *testing.T) {
		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return(nil, errors.New("connection refused"))

		_, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForDate(ctx, monday)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestAvailabilityQueries_ResolveForClass(t *testing.T) {
	ctx := context.Background()
	monday := mustDate(t, "2025-06-09")

	t.Run("filters to the requested class", func(t *testing.T) {
		target := builder.NewClassBuilder()
		other := builder.NewClassBuilder()

		targetSlot := builder.NewSlotBuilder(target.ID)
		otherSlot := builder.NewSlotBuilder(other.ID)

		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		catalog.On("FindClassByID", ctx, target.ID).Return(target.BuildView(), nil)
		catalog.On("ListSlotsByWeekday", ctx, int32(1)).Return([]*queries.SlotWithClass{
			targetSlot.BuildSlotWithClass(target),
			otherSlot.BuildSlotWithClass(other),
		}, nil)
		ledger.On("CountConfirmedByDate", ctx, monday).Return(map[uuid.UUID]int32{}, nil)

		result, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForClass(ctx, target.ID, monday)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, target.ID, result[0].ClassID)
	})

	t.Run("unknown class", func(t *testing.T) {
		catalog := new(MockCatalogReadStore)
		ledger := new(MockBookingCounter)
		id := uuid.New()
		catalog.On("FindClassByID", ctx, id).
			Return(nil, infra.WrapRepoErr("class not found", pgx.ErrNoRows))

		_, err := queries.NewAvailabilityQueries(catalog, ledger).ResolveForClass(ctx, id, monday)
		assert.ErrorIs(t, err, errs.ErrClassNotFound)
	})
}
