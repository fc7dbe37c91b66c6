// Package cache provides the offline fallback snapshot for the list view.
//
// # Overview
//
// The Store retains exactly one snapshot: the last successful default-view
// list page together with the timestamp it was captured. When a live fetch
// fails, the list controller serves this snapshot instead — but only while it
// is younger than the five-minute TTL. Stale snapshots are simply ignored
// until the next successful fetch overwrites them; nothing actively purges.
//
// # Persistence
//
// The snapshot is mirrored to a single JSON file under the configured cache
// directory so it survives restarts. Writes are best-effort: a full disk or
// missing directory degrades the store to memory-only operation, never
// failing the fetch that produced the page. There is no encryption and no
// integrity verification — this is a read-path convenience, not durable
// storage.
//
// # Testing
//
// NewStore accepts an injected clock, which makes TTL-boundary behavior
// (servable at t0+299s, stale at t0+301s) deterministic to test.
package cache
