package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/tianji/internal/db"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "concurrent_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite verifies that concurrent ListByProfile
// calls do not block or corrupt data while writes are in progress.
// SQLite WAL mode allows concurrent readers with a single writer, which is the
// normal operating mode here (single-user CLI with occasional writes).
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	profileRepo := NewSQLiteProfileRepo(database)
	readingRepo := NewSQLiteReadingRepo(database)

	// Seed initial data.
	profile := testutil.NewTestProfile()
	require.NoError(t, profileRepo.Create(ctx, profile))

	var wg sync.WaitGroup

	// Writer goroutine: record 20 readings sequentially.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			reading := testutil.NewTestReading(profile.ID, fmt.Sprintf("解读 %d", i),
				testutil.WithTopic("事业运势"),
			)
			if err := readingRepo.Create(ctx, reading); err != nil {
				t.Errorf("writer: create reading %d: %v", i, err)
				return
			}
		}
	}()

	// Reader goroutines: repeatedly list readings while writes happen.
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				readings, err := readingRepo.ListByProfile(ctx, profile.ID, 0)
				if err != nil {
					t.Errorf("reader %d: list readings: %v", reader, err)
					return
				}
				// Rows should be a consistent snapshot (not half-written).
				for _, rd := range readings {
					if rd.ID == "" || rd.ProfileID == "" || rd.Content == "" {
						t.Errorf("reader %d: got reading with empty field", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	// Final check: all 20 readings should be present.
	readings, err := readingRepo.ListByProfile(ctx, profile.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, len(readings))
}

// TestConcurrentAccess_SequentialWritesConcurrentReads verifies that building
// up state through sequential writes while multiple readers query concurrently
// produces correct, consistent results with no data races.
func TestConcurrentAccess_SequentialWritesConcurrentReads(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	profileRepo := NewSQLiteProfileRepo(database)
	readingRepo := NewSQLiteReadingRepo(database)

	const profileCount = 10

	// Phase 1: Sequentially create profiles, each with one stored reading.
	// This simulates normal CLI usage (one operation at a time).
	ids := make([]string, 0, profileCount)
	for i := 0; i < profileCount; i++ {
		profile := testutil.NewTestProfile(
			testutil.WithBirthDate(1980+i, 6, 15),
		)
		require.NoError(t, profileRepo.Create(ctx, profile))
		ids = append(ids, profile.ID)

		reading := testutil.NewTestReading(profile.ID, fmt.Sprintf("命盘解读 %d", i))
		require.NoError(t, readingRepo.Create(ctx, reading))
	}

	// Phase 2: Launch many concurrent readers to stress-test read consistency.
	var wg sync.WaitGroup
	const readers = 20

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()

			// List profiles
			profiles, err := profileRepo.List(ctx)
			if err != nil {
				t.Errorf("reader %d: list profiles: %v", reader, err)
				return
			}
			if len(profiles) != profileCount {
				t.Errorf("reader %d: expected %d profiles, got %d", reader, profileCount, len(profiles))
			}

			// Each profile holds exactly one reading.
			id := ids[reader%profileCount]
			readings, err := readingRepo.ListByProfile(ctx, id, 0)
			if err != nil {
				t.Errorf("reader %d: list readings: %v", reader, err)
				return
			}
			if len(readings) != 1 {
				t.Errorf("reader %d: expected 1 reading for %s, got %d", reader, id, len(readings))
			}

			// Point lookups stay consistent too.
			p, err := profileRepo.GetByID(ctx, id)
			if err != nil {
				t.Errorf("reader %d: get profile %s: %v", reader, id, err)
				return
			}
			if p.ID != id {
				t.Errorf("reader %d: got profile %s, wanted %s", reader, p.ID, id)
			}
		}(r)
	}

	wg.Wait()
}

// TestConcurrentAccess_DailyQuota_SingleWinner races many goroutines for one
// profile's daily divination quota. Each transaction re-reads last_divination,
// so exactly one worker may consume the day and record its casting.
func TestConcurrentAccess_DailyQuota_SingleWinner(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	profileRepo := NewSQLiteProfileRepo(database)
	readingRepo := NewSQLiteReadingRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	profile := testutil.NewTestProfile()
	require.NoError(t, profileRepo.Create(ctx, profile))

	errAlreadyCast := errors.New("already cast today")
	const today = "2026-08-23"

	retryTx := func(fn func() error) error {
		const maxRetries = 10
		for attempt := 0; attempt < maxRetries; attempt++ {
			err := fn()
			if err == nil || errors.Is(err, errAlreadyCast) {
				return err
			}
			if attempt == maxRetries-1 {
				return err
			}
			time.Sleep(time.Millisecond * time.Duration(1<<attempt))
		}
		return nil
	}

	const workers = 40
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results <- retryTx(func() error {
				return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					txProfiles := NewSQLiteProfileRepo(tx)
					txReadings := NewSQLiteReadingRepo(tx)

					last, err := txProfiles.LastDivination(ctx, profile.ID)
					if err != nil {
						return err
					}
					if last == today {
						return errAlreadyCast
					}
					if err := txProfiles.SetLastDivination(ctx, profile.ID, today); err != nil {
						return err
					}
					reading := testutil.NewTestReading(profile.ID, fmt.Sprintf("卦辞 %d", i),
						testutil.WithReadingKind(domain.ReadingDivination),
					)
					return txReadings.Create(ctx, reading)
				})
			})
		}(i)
	}

	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, errAlreadyCast):
			// Lost the race, as expected.
		default:
			require.NoError(t, err)
		}
	}

	assert.Equal(t, 1, winners, "exactly one worker should consume the daily quota")

	readings, err := readingRepo.ListByProfile(ctx, profile.ID, 0)
	require.NoError(t, err)
	assert.Len(t, readings, 1, "exactly one casting should be recorded")

	last, err := profileRepo.LastDivination(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, today, last)
}
