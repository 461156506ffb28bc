// Package cluster derives the k0sctl cluster-topology document from the
// live inventory and settings.
//
// Generate overwrites the config file wholesale on every inventory or
// settings mutation, so the persisted document never drifts more than one
// operation behind the in-memory model. Generation is idempotent: for
// unchanged inputs the output is byte-identical across calls, including
// the keepalived authentication token, which is created once from a
// cryptographic source and thereafter reloaded from the previously written
// file. Regenerating that token would silently invalidate a running HA
// control plane.
//
// Only enabled hosts appear in the document. A host's role maps to k0sctl's
// role strings, with "both" becoming the combined controller+worker
// designation.
package cluster
