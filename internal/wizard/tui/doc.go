// Package tui implements the interactive inventory wizard using the
// bubbletea Elm-style architecture.
//
// # Architecture
//
// One Model owns all mutable state: the host store, the settings, the
// keyboard focus, and the confirmed flag. State changes happen only inside
// Update, so no locking is needed anywhere in the wizard. Background probe
// workers communicate exclusively through probeResultMsg values pumped out
// of the prober's result channel one at a time.
//
// Focus movement is a pure function (Move in navigation.go) over the fixed
// regions of the form: the username field, the host table with its row
// cursor, the pattern input, the add button, the virtual IP input, and the
// continue button. Keeping it rendering-free makes the whole transition
// table unit-testable.
//
// # Persistence
//
// Every mutation funnels through persist(), which rewrites the inventory
// file, the settings file, and the cluster config together. A failed write
// is surfaced on the status line and aborts the operation that caused it,
// so the files on disk never drift from what the screen shows for long.
//
// # Components Used
//
//   - bubbles/textinput: username, pattern, and virtual IP fields
//   - bubbles/key + bubbles/help: declarative bindings and the help footer
//   - lipgloss: all styling (see styles.go)
package tui
