// Package app provides the orchestration layer for the subdeck application.
//
// # Overview
//
// This package wires together configuration, the subtrack API client, the
// offline cache, the list controller, and the UI to create the complete
// subdeck TUI experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load subdeck configuration from ~/.config/subdeck/config.toml
//  2. Load user preferences (theme, saved sort)
//  3. Initialize the HTTP client for the subtrack API
//  4. Open the on-disk cache store for offline fallback
//  5. Create the list.Controller that owns all list state
//  6. Start the TUI and block until the user exits or the context cancels
//
// The initial list fetch happens inside the UI's Init command rather than
// here, so a slow or unreachable backend never delays startup: the UI comes
// up immediately and either populates from the network or falls back to the
// cached snapshot.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file not found or invalid
//   - Missing api_base in the configuration
//   - Client initialization failure (malformed base URL)
//
// Everything after startup is recoverable: fetch failures surface in the UI
// as an offline banner or status line, and the controller keeps serving the
// cached snapshot until the backend returns.
package app
