package discovery

import (
	"fmt"
	"strings"
	"time"
)

// Candidate is a machine found on the local network advertising SSH.
type Candidate struct {
	// Hostname is the mDNS hostname without the trailing dot
	// (e.g., "node1.local").
	Hostname string

	// IP is the address the host was resolved to, preferring IPv4.
	IP string

	// Port is the advertised SSH port, typically 22.
	Port int

	// DiscoveredAt is when the advertisement was received.
	DiscoveredAt time.Time
}

// String returns a human-readable description of the candidate.
func (c *Candidate) String() string {
	return fmt.Sprintf("%s (%s) ssh port %d", c.Hostname, c.IP, c.Port)
}

// InventoryName returns the name to store in an inventory. mDNS hostnames
// carry a trailing dot on the wire; the stored name must not.
func (c *Candidate) InventoryName() string {
	return strings.TrimSuffix(c.Hostname, ".")
}
