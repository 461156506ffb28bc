package probe

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zorlin/sparx/internal/inventory"
	"github.com/Zorlin/sparx/internal/logging"
)

const (
	// DefaultDNSTimeout bounds name resolution per host.
	DefaultDNSTimeout = 3 * time.Second

	// DefaultConnectTimeout bounds the TCP connect attempt per host.
	DefaultConnectTimeout = 1 * time.Second

	// DefaultPort is the SSH port probed for reachability.
	DefaultPort = 22
)

// Target identifies one host to probe. The index is carried through to the
// Result so the consumer can merge it back into the store without sharing
// references with the worker.
type Target struct {
	Index int
	Name  string
}

// Result is the outcome of probing a single host.
type Result struct {
	Index  int
	Name   string
	Status inventory.Status

	// IPAddress is the resolved address, or empty when resolution failed.
	IPAddress string
}

// Prober runs concurrent DNS+TCP reachability probes.
type Prober struct {
	// DNSTimeout is the per-host resolution timeout.
	DNSTimeout time.Duration

	// ConnectTimeout is the per-host TCP connect timeout.
	ConnectTimeout time.Duration

	// Port is the TCP port probed, normally 22.
	Port int

	// Seams for tests; nil means the net package defaults.
	lookup func(ctx context.Context, host string) ([]string, error)
	dial   func(addr string, timeout time.Duration) (net.Conn, error)
}

// New creates a prober with default timeouts.
func New() *Prober {
	return &Prober{
		DNSTimeout:     DefaultDNSTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		Port:           DefaultPort,
	}
}

// Start launches one worker per target and returns the channel on which
// results arrive, one per target in completion order. The channel is closed
// after the last result. Start never blocks on network I/O.
func (p *Prober) Start(targets []Target) <-chan Result {
	results := make(chan Result, len(targets))

	var wg sync.WaitGroup
	for _, t := range targets {
		wg.Add(1)
		go func(t Target) {
			defer wg.Done()
			results <- p.probeOne(t)
		}(t)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// probeOne resolves the target name and attempts a TCP connect. It always
// returns a terminal status; failures are status, not errors.
func (p *Prober) probeOne(t Target) Result {
	ip, err := p.resolve(t.Name)
	if err != nil {
		logging.Debug("probe dns failure", zap.String("host", t.Name), zap.Error(err))
		return Result{Index: t.Index, Name: t.Name, Status: inventory.StatusDNSFailed}
	}

	addr := net.JoinHostPort(ip, strconv.Itoa(p.Port))
	conn, err := p.dialAddr(addr)
	if err != nil {
		logging.Debug("probe connect failure", zap.String("host", t.Name), zap.String("addr", addr), zap.Error(err))
		return Result{Index: t.Index, Name: t.Name, Status: inventory.StatusUnreachable, IPAddress: ip}
	}
	conn.Close()

	logging.Debug("probe reachable", zap.String("host", t.Name), zap.String("addr", addr))
	return Result{Index: t.Index, Name: t.Name, Status: inventory.StatusReachable, IPAddress: ip}
}

func (p *Prober) resolve(host string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.DNSTimeout)
	defer cancel()

	lookup := p.lookup
	if lookup == nil {
		lookup = func(ctx context.Context, host string) ([]string, error) {
			return net.DefaultResolver.LookupHost(ctx, host)
		}
	}

	addrs, err := lookup(ctx, host)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", &net.DNSError{Err: "no addresses", Name: host, IsNotFound: true}
	}

	// Prefer IPv4 addresses; SSH targets here are typically v4.
	for _, a := range addrs {
		if ip := net.ParseIP(a); ip != nil && ip.To4() != nil {
			return a, nil
		}
	}
	return addrs[0], nil
}

func (p *Prober) dialAddr(addr string) (net.Conn, error) {
	if p.dial != nil {
		return p.dial(addr, p.ConnectTimeout)
	}
	return net.DialTimeout("tcp", addr, p.ConnectTimeout)
}
