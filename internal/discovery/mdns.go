package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type advertised by SSH servers.
	ServiceType = "_ssh._tcp"

	// ServiceDomain is the mDNS domain (typically "local.").
	ServiceDomain = "local."

	// DefaultScanTimeout is the default time to collect advertisements.
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is used when an advertisement carries no port.
	DefaultPort = 22
)

// Scanner browses the local network for SSH service advertisements.
type Scanner struct {
	// Timeout is the maximum time to wait for advertisements.
	Timeout time.Duration
}

// NewScanner creates a scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan collects SSH candidates until the timeout elapses.
func (s *Scanner) Scan() ([]*Candidate, error) {
	return s.ScanWithContext(context.Background())
}

// ScanWithContext collects SSH candidates with a custom context. Results are
// deduplicated by hostname and sorted by name.
func (s *Scanner) ScanWithContext(ctx context.Context) ([]*Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	byName := make(map[string]*Candidate)
	done := make(chan struct{})

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		defer close(done)
		for entry := range entries {
			c := parseServiceEntry(entry)
			if c == nil {
				continue
			}
			if _, seen := byName[c.Hostname]; !seen {
				byName[c.Hostname] = c
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	<-done

	candidates := make([]*Candidate, 0, len(byName))
	for _, c := range byName {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Hostname < candidates[j].Hostname
	})
	return candidates, nil
}

// parseServiceEntry converts a zeroconf service entry into a candidate.
// Returns nil for entries without a usable hostname or address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Candidate {
	hostname := strings.TrimSuffix(entry.HostName, ".")
	if hostname == "" {
		return nil
	}

	// Prefer IPv4, fall back to IPv6.
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	return &Candidate{
		Hostname:     hostname,
		IP:           ip,
		Port:         port,
		DiscoveredAt: time.Now(),
	}
}

// Scan is a convenience function that runs a single scan with the given timeout.
func Scan(timeout time.Duration) ([]*Candidate, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan()
}
