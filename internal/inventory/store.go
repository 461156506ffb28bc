package inventory

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Zorlin/sparx/internal/hostpattern"
	"github.com/Zorlin/sparx/internal/logging"
)

// ErrInvalidHost is returned by Add when the input fails pattern validation.
// The caller keeps the rejected input so the user can correct it.
var ErrInvalidHost = errors.New("invalid hostname or pattern")

// DuplicateError is returned by Add when every expanded hostname already
// exists in the store. Partial overlap is not an error; see AddResult.
type DuplicateError struct {
	// Names are the case-insensitive duplicates that were rejected.
	Names []string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("all %d hosts already present", len(e.Names))
}

// AddResult reports the outcome of an Add operation.
type AddResult struct {
	// Added holds the store indices of the appended hosts, in order.
	Added []int

	// Skipped holds names from the expansion that already existed and were
	// not added. Non-empty Skipped with non-empty Added means a partial add.
	Skipped []string
}

// Store is the canonical ordered host list. It is not safe for concurrent
// use; the wizard's update loop is its sole owner and mutator.
type Store struct {
	hosts []Host
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of hosts, enabled or not.
func (s *Store) Len() int {
	return len(s.hosts)
}

// Hosts returns a copy of the host list in insertion order.
func (s *Store) Hosts() []Host {
	out := make([]Host, len(s.hosts))
	copy(out, s.hosts)
	return out
}

// Host returns the host at index, or false when index is out of range.
func (s *Store) Host(index int) (Host, bool) {
	if index < 0 || index >= len(s.hosts) {
		return Host{}, false
	}
	return s.hosts[index], true
}

// Contains reports whether name is already present, compared
// case-insensitively.
func (s *Store) Contains(name string) bool {
	for _, h := range s.hosts {
		if strings.EqualFold(h.Name, name) {
			return true
		}
	}
	return false
}

// Add validates and expands pattern, then appends every hostname not
// already present. Names are deduplicated case-insensitively against the
// whole store regardless of enabled state.
//
// When the input is malformed it returns ErrInvalidHost and the store is
// untouched. When every expanded name is a duplicate it returns
// *DuplicateError. When only some are duplicates the new hosts are added
// and the skipped names are reported in the result.
func (s *Store) Add(pattern string) (AddResult, error) {
	pattern = strings.TrimSpace(pattern)
	if !hostpattern.Validate(pattern) {
		return AddResult{}, fmt.Errorf("%w: %q", ErrInvalidHost, pattern)
	}

	names, err := hostpattern.Expand(pattern)
	if err != nil {
		// Validate accepted it, so this is unexpected; report it the same way.
		return AddResult{}, fmt.Errorf("%w: %q", ErrInvalidHost, pattern)
	}

	var result AddResult
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if seen[key] || s.Contains(name) {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		seen[key] = true
		s.hosts = append(s.hosts, NewHost(name))
		result.Added = append(result.Added, len(s.hosts)-1)
	}

	if len(result.Added) == 0 {
		return AddResult{}, &DuplicateError{Names: result.Skipped}
	}

	logging.Debug("hosts added",
		zap.String("pattern", pattern),
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// Remove deletes the host at index.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.hosts) {
		return fmt.Errorf("host index %d out of range", index)
	}
	s.hosts = append(s.hosts[:index], s.hosts[index+1:]...)
	return nil
}

// ToggleEnabled flips the enabled flag of the host at index.
func (s *Store) ToggleEnabled(index int) error {
	if index < 0 || index >= len(s.hosts) {
		return fmt.Errorf("host index %d out of range", index)
	}
	s.hosts[index].Enabled = !s.hosts[index].Enabled
	return nil
}

// CycleRole advances the host's role through worker → controller → both.
func (s *Store) CycleRole(index int) (Role, error) {
	if index < 0 || index >= len(s.hosts) {
		return RoleWorker, fmt.Errorf("host index %d out of range", index)
	}
	s.hosts[index].Role = s.hosts[index].Role.Next()
	return s.hosts[index].Role, nil
}

// MarkChecking transitions the given hosts to StatusChecking. The wizard
// calls this synchronously before handing the same indices to the prober,
// so the display reflects in-flight probes before any network I/O starts.
func (s *Store) MarkChecking(indices []int) {
	for _, i := range indices {
		if i < 0 || i >= len(s.hosts) {
			continue
		}
		s.hosts[i].Status = StatusChecking
	}
}

// ApplyProbe merges one probe result into the store. Results are produced
// on background goroutines but must only be applied here, on the owning
// loop. A result whose index is out of range, or whose name no longer
// matches the host at that index, is stale (the host was removed while the
// probe was in flight) and is dropped. Returns whether the result was
// applied. The store's length is never changed by probing.
func (s *Store) ApplyProbe(index int, name string, status Status, ip string) bool {
	if index < 0 || index >= len(s.hosts) {
		logging.Warn("dropping stale probe result", zap.Int("index", index), zap.String("host", name))
		return false
	}
	if !strings.EqualFold(s.hosts[index].Name, name) {
		logging.Warn("dropping probe result for replaced host",
			zap.Int("index", index),
			zap.String("probed", name),
			zap.String("current", s.hosts[index].Name),
		)
		return false
	}
	s.hosts[index].Status = status
	if ip != "" {
		s.hosts[index].IPAddress = ip
	}
	return true
}
