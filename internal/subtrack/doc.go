// Package subtrack provides an HTTP client for the subtrack backend API.
//
// # Overview
//
// This package defines the API client for communicating with the subtrack
// subscription-tracker backend. It handles HTTP communication, JSON
// serialization, bearer authentication, and type-safe representation of
// subscriptions and list pages.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the subtrack API schema
//   - errors.go: Error taxonomy mapped from HTTP status codes
//
// # Client Usage
//
// Create a client using the base URL and token from configuration:
//
//	client, err := subtrack.NewClient("https://subtrack.example.com", token)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	page, err := client.ListSubscriptions(ctx, query.Values())
//	if errors.Is(err, subtrack.ErrSessionExpired) {
//		// prompt for re-authentication
//	}
//
// # API Endpoints
//
// The client covers the subscription resource:
//
//   - GET /subscriptions: One page of the filtered, sorted list
//   - DELETE /subscriptions/{id}: Remove a subscription (204)
//   - POST /subscriptions/{id}/restore: Undo a delete (200 + record)
//   - POST /subscriptions: Create (201 + record)
//   - PUT /subscriptions/{id}: Update (200 + record)
//   - POST /subscriptions/{id}/cancel: Cancel with optional metadata
//   - POST /subscriptions/{id}/reactivate: Return to active status
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Carry Authorization: Bearer <token> when a token is configured
//   - Carry a fresh X-Request-Id (UUID) for backend correlation
//   - Have a 10-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// # Error Taxonomy
//
// Non-2xx responses map onto a small set of types callers branch on:
//
//   - 401 → ErrSessionExpired (sentinel, errors.Is)
//   - 404 → ErrNotFound (sentinel, errors.Is)
//   - 409 → *ConflictError (message surfaced verbatim)
//   - 422 → *ValidationError (first field-level message)
//   - 400 on restore → ErrNotDeleted
//   - anything else ≥400 → *APIError with status and message
//
// A failure to obtain any response at all (refused connection, timeout, DNS)
// is wrapped in *TransportError; IsTransport distinguishes it so the list
// controller can fall back to its cached snapshot.
//
// # Type System
//
// Subscription mirrors the backend record: identity, display name, decimal
// cost with currency code, billing cycle, next billing date (calendar date,
// no time component), optional category, reminder lead time, lifecycle
// status, and cancellation metadata. ListPage carries the items of one page
// together with the server-reported total and per-currency monthly totals.
//
// Date is a dedicated calendar-date type transported as "YYYY-MM-DD"; it
// rejects timestamps and supports ordering for the client-side re-insertion
// sort after an undo.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
package subtrack
