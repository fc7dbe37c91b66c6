package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/subdeck/subdeck/internal/subtrack"
)

// TTL bounds how long a snapshot may serve as an offline fallback.
const TTL = 5 * time.Minute

const snapshotFile = "list.json"

// snapshot is the on-disk and in-memory representation of the last good page.
type snapshot struct {
	Page       subtrack.ListPage `json:"page"`
	CapturedAt time.Time         `json:"captured_at"`
}

// Store retains the single most recent successful list page. Save always
// overwrites; Load serves the snapshot only while it is younger than TTL.
// Stale entries are ignored rather than purged, and disk persistence is
// best-effort: a failed write never fails the fetch that produced the page.
type Store struct {
	mu   sync.Mutex
	dir  string
	now  func() time.Time
	snap *snapshot
}

// NewStore builds a Store persisting under dir. An empty dir keeps the
// snapshot in memory only. A nil now uses time.Now.
func NewStore(dir string, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{dir: dir, now: now}
	s.snap = s.readFile()
	return s
}

// Save captures page with the current timestamp, replacing any prior snapshot.
func (s *Store) Save(page subtrack.ListPage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = &snapshot{Page: clonePage(page), CapturedAt: s.now()}
	s.writeFile(*s.snap)
}

// Load returns the snapshot while it is within TTL. The second return is
// false when no snapshot exists or the snapshot has gone stale.
func (s *Store) Load() (subtrack.ListPage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return subtrack.ListPage{}, false
	}
	if s.now().Sub(s.snap.CapturedAt) > TTL {
		return subtrack.ListPage{}, false
	}
	return clonePage(s.snap.Page), true
}

// CapturedAt reports when the current snapshot was taken, if one exists.
func (s *Store) CapturedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return time.Time{}, false
	}
	return s.snap.CapturedAt, true
}

func (s *Store) path() string {
	return filepath.Join(s.dir, snapshotFile)
}

func (s *Store) readFile() *snapshot {
	if s.dir == "" {
		return nil
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		// Missing or unreadable snapshots degrade to an empty cache.
		return nil
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	return &snap
}

func (s *Store) writeFile(snap snapshot) {
	if s.dir == "" {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path(), data, 0o644)
}

func clonePage(page subtrack.ListPage) subtrack.ListPage {
	dup := page
	if len(page.Items) > 0 {
		dup.Items = make([]subtrack.Subscription, len(page.Items))
		copy(dup.Items, page.Items)
	}
	if len(page.MonthlyTotals) > 0 {
		dup.MonthlyTotals = make(map[string]float64, len(page.MonthlyTotals))
		for k, v := range page.MonthlyTotals {
			dup.MonthlyTotals[k] = v
		}
	}
	return dup
}
