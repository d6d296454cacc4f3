//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// BookingRow is the raw column set inserted by CreateTestBooking. Time
// columns are text so malformed legacy values can be seeded as well.
type BookingRow struct {
	ClientName   string
	Status       string
	EventDate    string
	EventTime    *string
	EventEndTime *string
	Venue        *string
}

func CreateTestBooking(t *testing.T, db DBLike, row BookingRow) int64 {
	t.Helper()

	if row.Status == "" {
		row.Status = "confirmed"
	}
	if row.ClientName == "" {
		row.ClientName = "Test Client"
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (client_name, status, event_date, event_time, event_end_time, venue)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING id`,
		row.ClientName, row.Status, row.EventDate, row.EventTime, row.EventEndTime, row.Venue,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestResolution(t *testing.T, db DBLike, date string, bookingIDs ...int64) uuid.UUID {
	t.Helper()

	ids := slices.Clone(bookingIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO conflict_resolutions (id, booking_ids, conflict_date)
		VALUES ($1, $2, $3::date)`,
		id, ids, date,
	)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
