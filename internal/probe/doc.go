// Package probe implements best-effort reachability checks for inventory
// hosts.
//
// A probe combines DNS resolution with a TCP connect attempt to the SSH
// port. Probes run on background goroutines, one per host, each bounded by
// short fixed timeouts so a single unreachable host cannot stall visibility
// of the others' results.
//
// Workers never touch shared state. Each probe produces exactly one Result
// on the channel returned by Start, one host at a time so partial progress
// is observable, and the channel is closed once every worker has finished.
// The wizard's update loop is the only consumer; it merges results into the
// inventory via Store.ApplyProbe, which drops results for hosts removed
// while the probe was in flight.
//
// Probe failures are never errors. DNS or connect failures are recorded
// purely as host status.
package probe
