package list

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/subdeck/subdeck/internal/cache"
	"github.com/subdeck/subdeck/internal/subtrack"
)

// UndoWindow is the number of seconds a deleted subscription stays
// restorable.
const UndoWindow = 10

// ErrNoPendingDeletion is returned by Undo when no deletion is undoable.
var ErrNoPendingDeletion = errors.New("no pending deletion")

// pendingDeletion is the removed-but-undoable record held during the undo
// window. The generation stamps its countdown: ticks carrying an older
// generation belong to a superseded deletion and are ignored.
type pendingDeletion struct {
	sub       subtrack.Subscription
	remaining int
	gen       uint64
	restoring bool
}

// PendingView is the read-only undo state exposed to the UI.
type PendingView struct {
	Subscription subtrack.Subscription
	Remaining    int
	Restoring    bool
	Gen          uint64
}

// Snapshot is the read-only view of the canonical list state.
type Snapshot struct {
	Items         []subtrack.Subscription
	Total         int
	MonthlyTotals map[string]float64
	Query         Query
	Loading       bool
	Offline       bool
	NeedsReload   bool
	LastError     error
	Pending       *PendingView
}

// Controller owns the canonical in-memory subscription list: it fetches and
// filters pages, applies optimistic mutations, runs the undo countdown, and
// falls back to the cache snapshot when the backend is unreachable. All state
// transitions are serialized under one mutex; network calls happen outside
// the critical section and re-validate against the issue sequence before
// applying, so a slow stale response can never clobber a newer one.
type Controller struct {
	mu    sync.Mutex
	api   subtrack.API
	cache *cache.Store

	query  Query
	items  []subtrack.Subscription
	total  int
	totals map[string]float64

	loading     int
	offline     bool
	needsReload bool
	lastErr     error

	fetchSeq uint64
	undoGen  uint64
	pending  *pendingDeletion
}

// NewController builds a Controller over the given API and cache store. A nil
// store disables the offline fallback.
func NewController(api subtrack.API, store *cache.Store, pageSize int) *Controller {
	return &Controller{
		api:   api,
		cache: store,
		query: DefaultQuery(pageSize),
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Total:       c.total,
		Query:       c.query,
		Loading:     c.loading > 0,
		Offline:     c.offline,
		NeedsReload: c.needsReload,
	}
	if len(c.items) > 0 {
		snap.Items = make([]subtrack.Subscription, len(c.items))
		copy(snap.Items, c.items)
	}
	if len(c.totals) > 0 {
		snap.MonthlyTotals = make(map[string]float64, len(c.totals))
		for k, v := range c.totals {
			snap.MonthlyTotals[k] = v
		}
	}
	if c.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", c.lastErr)
	}
	if c.pending != nil {
		snap.Pending = &PendingView{
			Subscription: c.pending.sub,
			Remaining:    c.pending.remaining,
			Restoring:    c.pending.restoring,
			Gen:          c.pending.gen,
		}
	}
	return snap
}

// Query returns the currently active query.
func (c *Controller) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetSearch replaces the free-text search; the caller issues the reset load.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Search = text
}

// SetStatus replaces the lifecycle status filter.
func (c *Controller) SetStatus(status StatusFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Status = status
}

// SetSort replaces the sort field and direction.
func (c *Controller) SetSort(field SortField, dir SortDir) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.SortBy = field
	c.query.Order = dir
}

// SetBillingCycle replaces the billing-cycle filter; empty clears it.
func (c *Controller) SetBillingCycle(cycle subtrack.BillingCycle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.BillingCycle = cycle
}

// SetCostRange replaces the cost bounds; nil clears a bound.
func (c *Controller) SetCostRange(min, max *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.CostMin = min
	c.query.CostMax = max
}

// SetCategory replaces the category filter; nil clears it.
func (c *Controller) SetCategory(id *int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.CategoryID = id
}

// Load fetches one page of the list. With reset true the accumulated items
// are discarded and pagination restarts at offset zero; with reset false the
// returned items are appended and the offset advances by the count returned.
//
// A reset load that fails for any reason other than an expired session is
// served from the cache snapshot when one is valid; the result is then marked
// offline. Session expiry is never masked by the cache.
func (c *Controller) Load(ctx context.Context, reset bool) error {
	c.mu.Lock()
	if reset {
		c.query.Offset = 0
	}
	q := c.query
	c.fetchSeq++
	seq := c.fetchSeq
	c.loading++
	c.mu.Unlock()

	page, err := c.api.ListSubscriptions(ctx, q.Values())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--

	// A newer fetch has been issued since; this response no longer speaks
	// for the current query.
	if seq != c.fetchSeq {
		return nil
	}

	if err != nil {
		if errors.Is(err, subtrack.ErrSessionExpired) {
			c.lastErr = err
			return err
		}
		if reset && c.cache != nil {
			if cached, ok := c.cache.Load(); ok {
				c.applyPage(cached, true)
				c.query.Offset = len(cached.Items)
				c.offline = true
				c.lastErr = nil
				return nil
			}
		}
		c.lastErr = err
		return fmt.Errorf("load subscriptions: %w", err)
	}

	c.applyPage(page, reset)
	c.offline = false
	c.needsReload = false
	c.lastErr = nil
	c.query.Offset += len(page.Items)

	if reset && q.Offset == 0 && c.cache != nil && q.FiltersAtDefault() {
		c.cache.Save(page)
	}
	return nil
}

// applyPage folds one page into the canonical list. Callers hold the mutex.
func (c *Controller) applyPage(page subtrack.ListPage, reset bool) {
	if reset {
		c.items = append([]subtrack.Subscription(nil), page.Items...)
	} else {
		c.items = append(c.items, page.Items...)
	}
	c.total = page.Total
	c.totals = make(map[string]float64, len(page.MonthlyTotals))
	for k, v := range page.MonthlyTotals {
		c.totals[k] = v
	}
}

// Delete removes a subscription, confirm-then-apply: the canonical list
// changes only after the server acknowledged the delete. On success the
// removed record enters the undo window, replacing any prior pending
// deletion. A 404 means the record was already gone server-side; it is
// removed locally without an undo window and NeedsReload is raised so the
// caller reconciles totals with a full reload.
func (c *Controller) Delete(ctx context.Context, sub subtrack.Subscription) error {
	err := c.api.DeleteSubscription(ctx, sub.ID)

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case err == nil:
		c.removeLocked(sub)
		c.undoGen++
		c.pending = &pendingDeletion{
			sub:       sub,
			remaining: UndoWindow,
			gen:       c.undoGen,
		}
		return nil

	case errors.Is(err, subtrack.ErrNotFound):
		c.removeLocked(sub)
		c.needsReload = true
		return nil

	default:
		return fmt.Errorf("delete subscription %d: %w", sub.ID, err)
	}
}

// removeLocked drops sub from the canonical list and adjusts the counters.
// Callers hold the mutex.
func (c *Controller) removeLocked(sub subtrack.Subscription) {
	for i := range c.items {
		if c.items[i].ID == sub.ID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	if c.total > 0 {
		c.total--
	}
	if c.query.Offset > 0 {
		c.query.Offset--
	}
	c.adjustTotal(sub, -1)
}

// adjustTotal shifts the per-currency monthly total by sign times the
// subscription's normalized monthly cost.
func (c *Controller) adjustTotal(sub subtrack.Subscription, sign float64) {
	if sub.Currency == "" {
		return
	}
	if c.totals == nil {
		c.totals = make(map[string]float64)
	}
	c.totals[sub.Currency] += sign * sub.MonthlyCost()
}

// TickUndo advances the undo countdown for the given generation by one
// second. It returns the seconds remaining and whether the countdown is still
// running; a superseded generation, a restore in flight, or an expired window
// all report false. Reaching zero clears the pending deletion: the record was
// already deleted server-side and now becomes permanent client-side too.
func (c *Controller) TickUndo(gen uint64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || c.pending.gen != gen || c.pending.restoring {
		return 0, false
	}
	c.pending.remaining--
	if c.pending.remaining <= 0 {
		c.pending = nil
		return 0, false
	}
	return c.pending.remaining, true
}

// Undo restores the pending deletion. The countdown stops immediately; on
// success the record is re-inserted at the position dictated by the active
// sort order and the totals recover. Restore failures (already restored, not
// found, anything else) discard the pending record and surface the error.
func (c *Controller) Undo(ctx context.Context) error {
	c.mu.Lock()
	if c.pending == nil || c.pending.restoring {
		c.mu.Unlock()
		return ErrNoPendingDeletion
	}
	c.pending.restoring = true
	gen := c.pending.gen
	id := c.pending.sub.ID
	c.mu.Unlock()

	restored, err := c.api.RestoreSubscription(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer deletion replaced this one while the restore was in flight;
	// its outcome no longer has a home.
	if c.pending == nil || c.pending.gen != gen {
		return nil
	}
	c.pending = nil

	if err != nil {
		return fmt.Errorf("restore subscription %d: %w", id, err)
	}

	idx := insertIndex(c.items, restored, c.query.SortBy, c.query.Order)
	c.items = append(c.items, subtrack.Subscription{})
	copy(c.items[idx+1:], c.items[idx:])
	c.items[idx] = restored
	c.total++
	c.query.Offset++
	c.adjustTotal(restored, 1)
	return nil
}

// DismissUndo discards the pending deletion without restoring it. The
// stamped generation stays retired, so a straggling tick is a no-op.
func (c *Controller) DismissUndo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}
