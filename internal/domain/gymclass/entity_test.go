//go:build unit

package gymclass_test

import (
	"testing"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/gymclass"
	"github.com/manojshendge/gym-class-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classCase struct {
	name   string
	mutate func(*builder.ClassBuilder)
	errIs  error
}

func TestGymClass(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewClassBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Power Yoga", actual.Name())
		assert.Equal(t, gymclass.CategoryMindBody, actual.Category())
		assert.Equal(t, 60, actual.DurationMin())
		assert.Equal(t, 20, actual.Capacity())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := builder.NewClassBuilder().
			With(func(b *builder.ClassBuilder) { b.Name = "  Spin Express  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Spin Express", actual.Name())
	})

	t.Run("validation", func(t *testing.T) {
		runClassCases(t, []classCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ClassBuilder) { b.Name = "   " },
				errIs:  gymclass.ErrEmptyName,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.ClassBuilder) { b.DurationMin = 0 },
				errIs:  gymclass.ErrInvalidDuration,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.ClassBuilder) { b.DurationMin = -30 },
				errIs:  gymclass.ErrInvalidDuration,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.ClassBuilder) { b.Capacity = 0 },
				errIs:  gymclass.ErrInvalidCapacity,
			},
			{
				name:   "minimum valid capacity",
				mutate: func(b *builder.ClassBuilder) { b.Capacity = 1 },
			},
			{
				name: "unknown category is allowed",
				mutate: func(b *builder.ClassBuilder) {
					b.Category = gymclass.Category("Aqua Fitness")
				},
			},
		})
	})
}

func runClassCases(t *testing.T, cases []classCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewClassBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

type slotCase struct {
	name   string
	mutate func(*builder.SlotBuilder)
	errIs  error
}

func TestScheduleSlot(t *testing.T) {
	class, err := builder.NewClassBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		slot, err := builder.NewSlotBuilder(class.ID()).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, slot)

		assert.Equal(t, time.Monday, slot.Weekday())
		assert.Equal(t, "10:00", slot.Start().String())
		assert.Equal(t, "11:00", slot.End().String())
		assert.True(t, slot.BelongsTo(class.ID()))
		assert.Nil(t, slot.CapacityOverride())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []slotCase{
			{
				name:   "weekday below range",
				mutate: func(b *builder.SlotBuilder) { b.Weekday = -1 },
				errIs:  gymclass.ErrInvalidWeekday,
			},
			{
				name:   "weekday above range",
				mutate: func(b *builder.SlotBuilder) { b.Weekday = 7 },
				errIs:  gymclass.ErrInvalidWeekday,
			},
			{
				name:   "sunday is valid",
				mutate: func(b *builder.SlotBuilder) { b.Weekday = 0 },
			},
			{
				name:   "saturday is valid",
				mutate: func(b *builder.SlotBuilder) { b.Weekday = 6 },
			},
			{
				name: "start equals end",
				mutate: func(b *builder.SlotBuilder) {
					b.Start = "10:00"
					b.End = "10:00"
				},
				errIs: gymclass.ErrSlotTimesInverted,
			},
			{
				name: "start after end",
				mutate: func(b *builder.SlotBuilder) {
					b.Start = "18:00"
					b.End = "17:00"
				},
				errIs: gymclass.ErrSlotTimesInverted,
			},
			{
				name:   "zero capacity override",
				mutate: func(b *builder.SlotBuilder) { b.WithCapacity(0) },
				errIs:  gymclass.ErrInvalidCapacity,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewSlotBuilder(class.ID())
				tc.mutate(b)

				slot, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, slot)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, slot)
			})
		}
	})

	t.Run("effective capacity", func(t *testing.T) {
		plain, err := builder.NewSlotBuilder(class.ID()).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, class.Capacity(), plain.EffectiveCapacity(class))

		overridden, err := builder.NewSlotBuilder(class.ID()).WithCapacity(5).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 5, overridden.EffectiveCapacity(class))
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse valid", func(t *testing.T) {
		tod, err := gymclass.ParseTimeOfDay("07:30")
		require.NoError(t, err)
		assert.Equal(t, 7, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, "07:30", tod.String())
	})

	t.Run("parse invalid", func(t *testing.T) {
		for _, raw := range []string{"", "7", "24:00", "10:60", "abc", "7:5", "7:05", "12:34xyz", "12:345"} {
			_, err := gymclass.ParseTimeOfDay(raw)
			assert.ErrorIs(t, err, gymclass.ErrInvalidTimeOfDay, "input %q", raw)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		early, _ := gymclass.NewTimeOfDay(9, 0)
		late, _ := gymclass.NewTimeOfDay(9, 1)
		assert.True(t, early.Before(late))
		assert.False(t, late.Before(early))
		assert.False(t, early.Before(early))
	})
}
