// Package inventory holds the editable list of target machines for a
// cluster deployment.
//
// The Store is an ordered, insertion-preserving collection of Host entries.
// It is owned by the wizard's update loop: all mutations happen through the
// named operations (Add, Remove, ToggleEnabled, CycleRole, ApplyProbe) on a
// single goroutine, and each membership, role, or enable mutation is
// expected to be followed synchronously by a rewrite of the persisted hosts
// file and a regeneration of the cluster config.
//
// Host names are unique case-insensitively across the whole store,
// regardless of enabled state. Connection status is advisory only and never
// affects membership; probe results produced on background goroutines are
// merged in through ApplyProbe, which drops results for hosts that no
// longer exist.
//
// # Hosts File
//
// The persisted file is an ordered list with one entry per enabled host,
// either "hostname" or "username@hostname". External deployment glue
// consumes exactly this shape, so the layout mirrors display order.
package inventory
