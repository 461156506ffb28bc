// Package settings persists the process-wide Sparx settings.
//
// Settings hold values that outlive a single wizard session but are not
// part of the inventory itself: the SSH username, the HA virtual IP, and
// the cached SSH key path. They are stored as YAML in the OS-appropriate
// configuration directory and rewritten on every corresponding input
// change.
//
// Loading is forgiving: a missing or corrupt file yields empty settings
// rather than failing startup, and ResolveUsername layers in weaker
// username sources only when the file provided none. Saving is strict and
// atomic; a settings write that fails is surfaced to the caller.
package settings
