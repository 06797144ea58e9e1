package survey

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/SchoolPulse/SP-Backend/internal/db"
	"github.com/SchoolPulse/SP-Backend/internal/sheet"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a cleaned dataset is served before the sheet is
// refetched.
const DefaultTTL = 10 * time.Minute

// Store is a read-through TTL cache over fetch → clean → derive, keyed by
// the export URL. Concurrent refreshes are not coordinated: two callers
// hitting an expired entry both refetch, which is idempotent and benign.
type Store struct {
	client  *sheet.Client
	cache   *gocache.Cache
	persist bool
}

// NewStore wraps a sheet client with a TTL cache. With persist set, every
// fresh load is also written to Postgres as a snapshot.
func NewStore(client *sheet.Client, ttl time.Duration, persist bool) *Store {
	return &Store{
		client:  client,
		cache:   gocache.New(ttl, 2*ttl),
		persist: persist,
	}
}

// ttlFromEnv reads CACHE_TTL_SECONDS, defaulting to DefaultTTL.
func ttlFromEnv() time.Duration {
	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return DefaultTTL
}

// Records returns the cleaned dataset, refetching when the cached copy has
// expired. Everything downstream is recomputed from this slice per request;
// callers must not mutate it.
func (s *Store) Records(ctx context.Context) ([]School, error) {
	if v, ok := s.cache.Get(s.client.URL()); ok {
		return v.([]School), nil
	}

	sh, err := s.client.FetchCSV(ctx)
	if err != nil {
		return nil, err
	}

	records := BuildRecords(sh)
	s.cache.Set(s.client.URL(), records, gocache.DefaultExpiration)

	if s.persist {
		if err := s.saveSnapshot(sh, records); err != nil {
			// Snapshot history is best-effort; serving the dashboard wins.
			log.Printf("[survey] snapshot persist failed: %v", err)
		}
	}

	return records, nil
}

// Refresh drops the cached dataset and reloads it.
func (s *Store) Refresh(ctx context.Context) ([]School, error) {
	s.cache.Delete(s.client.URL())
	return s.Records(ctx)
}

// saveSnapshot writes the load and its cleaned rows to Postgres.
func (s *Store) saveSnapshot(sh *sheet.Sheet, records []School) error {
	snapshot := Snapshot{
		SourceURL: s.client.URL(),
		FetchedAt: time.Now().UTC(),
		RowCount:  len(records),
		Columns:   sh.Headers,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(&snapshot).Error; err != nil {
		tx.Rollback()
		return err
	}

	rows := make([]School, len(records))
	copy(rows, records)
	for i := range rows {
		rows[i].SnapshotID = snapshot.ID
	}
	if err := tx.CreateInBatches(rows, 100).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	log.Printf("[survey] persisted snapshot %s with %d schools", snapshot.ID, len(rows))
	return nil
}
