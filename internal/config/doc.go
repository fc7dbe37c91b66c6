// Package config handles loading and parsing subdeck configuration files.
//
// # Overview
//
// This package reads subdeck's TOML configuration to discover the subtrack
// backend's base URL, the bearer token to authenticate with, and where to
// keep the offline cache snapshot.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/subdeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// The API base has no default: subdeck cannot guess where the backend lives,
// so the caller validates it and tells the user to configure one.
//
// # TOML Format
//
// Example subdeck config.toml:
//
//	api_base = "https://subtrack.example.com"
//	token = "st_xxxxxxxx"
//	# or keep the credential out of the config file:
//	token_file = "~/.config/subdeck/token"
//	cache_dir = "~/.cache/subdeck"
//
// When both token and token_file are set, token_file wins. The token is
// treated as an opaque credential; acquiring or refreshing it is out of
// scope (subdeck only reacts to a 401 by asking the user to re-authenticate).
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths are made
// absolute, for the config file location, token_file, and cache_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, a
// token_file that cannot be read, and TOML parse errors. A missing config
// file is NOT an error — defaults are used instead.
package config
