//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, display_name, password_hash, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], TestPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func GetClassID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var classID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM classes WHERE name = $1 LIMIT 1", name).Scan(&classID)
	require.NoError(t, err)
	return classID
}

func GetSlotID(t *testing.T, db DBLike, classID uuid.UUID, startTime string) uuid.UUID {
	t.Helper()

	var slotID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM schedule_slots WHERE class_id = $1 AND start_time = $2::time LIMIT 1",
		classID, startTime).Scan(&slotID)
	require.NoError(t, err)
	return slotID
}

// inserts the class catalog needed by tests. "Power Yoga" carries a Monday
// evening slot with its capacity overridden down to 2 so capacity tests
// can fill it quickly.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	var yogaID uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO classes (name, description, category, instructor, duration_min, capacity)
		VALUES ('Power Yoga', 'Dynamic flow for strength and balance', 'Mind & Body', 'Maya Rodriguez', 60, 20)
		RETURNING id;
	`).Scan(&yogaID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO schedule_slots (class_id, day_of_week, start_time, end_time, capacity) VALUES
		    ($1, 1, '07:00', '08:00', NULL),
		    ($1, 1, '18:00', '19:00', 2);
	`, yogaID)
	if err != nil {
		return err
	}

	var hiitID uuid.UUID
	err = pool.QueryRow(ctx, `
		INSERT INTO classes (name, description, category, instructor, duration_min, capacity)
		VALUES ('HIIT Blast', 'Short intervals at full effort', 'HIIT', 'Jon Park', 45, 15)
		RETURNING id;
	`).Scan(&hiitID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO schedule_slots (class_id, day_of_week, start_time, end_time, capacity) VALUES
		    ($1, 3, '18:30', '19:15', NULL);
	`, hiitID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
