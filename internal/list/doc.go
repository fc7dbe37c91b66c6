// Package list implements the subscription list lifecycle controller.
//
// # Overview
//
// This package owns the canonical in-memory list shown by the UI and every
// transition it can go through: reset and load-more fetches, filter and sort
// changes, debounced search, optimistic deletion with a ten-second undo
// window, and the cache fallback that keeps the list visible when the
// backend is unreachable.
//
// # Architecture
//
// The package is split into four files:
//
//   - controller.go: Controller, the single state owner, plus the undo
//     state machine (Idle → PendingUndo → {Restoring, Idle})
//   - query.go: Query and its wire encoding for GET /subscriptions
//   - sort.go: the re-insertion comparator used after a successful undo
//   - debounce.go: the generation-stamped search debouncer
//
// # State Ownership
//
// Controller is the only writer of the canonical list. Every mutation —
// fetch completion, delete confirmation, undo tick, restore completion —
// takes the same mutex and applies as one atomic step, so two operations can
// never interleave partial writes. Network calls run outside the critical
// section; their results re-validate before applying.
//
// # Stale-Response Protection
//
// Each fetch is stamped with an issue sequence number. When a response
// arrives, it applies only if its fetch is still the most recently issued
// one. A slow fetch for an abandoned filter selection therefore cannot
// clobber the page the user is actually looking at, regardless of arrival
// order.
//
// # Timers
//
// The undo countdown and the search debouncer are cooperative: the host (the
// Bubble Tea program in production, the test directly in tests) drives them
// by calling TickUndo and Fire. Both are generation-stamped, so superseding
// a timer retires its generation and any late tick is a no-op. No goroutine
// timers, no races, and cancellation is testable without a UI.
//
// # Failure Semantics
//
//   - Session expiry (401) always surfaces; the cache never masks it.
//   - Other reset-fetch failures serve the cache snapshot when it is within
//     TTL, marking the result offline; otherwise the error surfaces.
//   - Delete and restore never partially apply: the list changes only after
//     the server confirmed the mutation.
//   - A 404 on delete is eventual-consistency noise: the record is removed
//     locally without an undo window and NeedsReload asks the caller for a
//     full reload to reconcile totals.
package list
