// Package ui implements the terminal interface with Bubble Tea.
//
// # Architecture
//
// The UI follows the Elm architecture: a single Model holds all view state,
// Update handles messages, and View renders the current state. All network
// work runs in tea.Cmd functions off the update loop; results come back as
// messages (loadedMsg, deletedMsg, undoneMsg).
//
// Timers are cooperative. Search debouncing and the undo countdown both use
// generation tokens: each armed timer carries the generation it was issued
// for, and a tick whose generation no longer matches the current one is a
// no-op. Cancelling therefore never races a live timer — superseded ticks
// simply fall through.
//
// The canonical list state lives in list.Controller; the Model keeps only a
// read-only Snapshot of it plus presentation state (selection, search input,
// theme, help overlay).
package ui
