package inventory

import (
	"errors"
	"testing"
)

func TestRole_Next(t *testing.T) {
	tests := []struct {
		name string
		from Role
		want Role
	}{
		{name: "worker to controller", from: RoleWorker, want: RoleController},
		{name: "controller to both", from: RoleController, want: RoleBoth},
		{name: "both back to worker", from: RoleBoth, want: RoleWorker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Next(); got != tt.want {
				t.Errorf("%v.Next() = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestNewHost_Defaults(t *testing.T) {
	h := NewHost("node1.example.com")

	if !h.Enabled {
		t.Error("new host should be enabled")
	}
	if h.Role != RoleBoth {
		t.Errorf("new host role = %v, want RoleBoth", h.Role)
	}
	if h.IPAddress != "node1.example.com" {
		t.Errorf("new host IPAddress = %q, want name", h.IPAddress)
	}
	if h.Status != StatusUnknown {
		t.Errorf("new host status = %v, want StatusUnknown", h.Status)
	}
}

func TestStore_AddPattern(t *testing.T) {
	s := NewStore()

	result, err := s.Add("n[1-3].example.com")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(result.Added) != 3 {
		t.Fatalf("Add() added %d hosts, want 3", len(result.Added))
	}
	if s.Len() != 3 {
		t.Errorf("store length = %d, want 3", s.Len())
	}

	want := []string{"n1.example.com", "n2.example.com", "n3.example.com"}
	for i, name := range want {
		h, ok := s.Host(i)
		if !ok {
			t.Fatalf("Host(%d) missing", i)
		}
		if h.Name != name {
			t.Errorf("host %d name = %q, want %q", i, h.Name, name)
		}
	}
}

func TestStore_AddInvalid(t *testing.T) {
	s := NewStore()

	_, err := s.Add("server[1-a].example.com")
	if !errors.Is(err, ErrInvalidHost) {
		t.Errorf("Add() error = %v, want ErrInvalidHost", err)
	}
	if s.Len() != 0 {
		t.Errorf("store mutated by invalid add, length = %d", s.Len())
	}
}

func TestStore_AddAllDuplicates(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Same hostname in a different case must still be rejected.
	_, err := s.Add("EXAMPLE.com")
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("Add() error = %v, want *DuplicateError", err)
	}
	if len(dup.Names) != 1 {
		t.Errorf("DuplicateError names = %v, want one entry", dup.Names)
	}
	if s.Len() != 1 {
		t.Errorf("duplicate add grew the store to %d", s.Len())
	}
}

func TestStore_AddPartialDuplicates(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("n2.example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	result, err := s.Add("n[1-3].example.com")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(result.Added) != 2 {
		t.Errorf("Add() added %d hosts, want 2", len(result.Added))
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "n2.example.com" {
		t.Errorf("Add() skipped = %v, want [n2.example.com]", result.Skipped)
	}
	if s.Len() != 3 {
		t.Errorf("store length = %d, want 3", s.Len())
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("n[1-3].example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.Remove(1); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("store length = %d, want 2", s.Len())
	}
	h, _ := s.Host(1)
	if h.Name != "n3.example.com" {
		t.Errorf("host 1 after remove = %q, want n3.example.com", h.Name)
	}

	if err := s.Remove(5); err == nil {
		t.Error("Remove() out of range should fail")
	}
}

func TestStore_ToggleAndCycle(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.ToggleEnabled(0); err != nil {
		t.Fatalf("ToggleEnabled() error = %v", err)
	}
	if h, _ := s.Host(0); h.Enabled {
		t.Error("host should be disabled after toggle")
	}

	role, err := s.CycleRole(0)
	if err != nil {
		t.Fatalf("CycleRole() error = %v", err)
	}
	if role != RoleWorker {
		t.Errorf("CycleRole() from both = %v, want RoleWorker", role)
	}
}

func TestStore_MarkChecking(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("n[1-2].example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	s.MarkChecking([]int{0, 1, 99})

	for i := 0; i < 2; i++ {
		if h, _ := s.Host(i); h.Status != StatusChecking {
			t.Errorf("host %d status = %v, want StatusChecking", i, h.Status)
		}
	}
}

func TestStore_ApplyProbe(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("n[1-2].example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	s.MarkChecking([]int{0, 1})

	if !s.ApplyProbe(0, "n1.example.com", StatusReachable, "10.0.0.1") {
		t.Error("ApplyProbe() should apply a valid result")
	}
	h, _ := s.Host(0)
	if h.Status != StatusReachable || h.IPAddress != "10.0.0.1" {
		t.Errorf("host 0 after probe = %v/%q", h.Status, h.IPAddress)
	}

	// DNS failure keeps the name as the address.
	if !s.ApplyProbe(1, "n2.example.com", StatusDNSFailed, "") {
		t.Error("ApplyProbe() should apply a dns failure")
	}
	h, _ = s.Host(1)
	if h.Status != StatusDNSFailed || h.IPAddress != "n2.example.com" {
		t.Errorf("host 1 after dns failure = %v/%q", h.Status, h.IPAddress)
	}
}

func TestStore_ApplyProbeStale(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("n[1-2].example.com"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Out-of-range index: host removed while the probe was in flight.
	if s.ApplyProbe(5, "n9.example.com", StatusReachable, "10.0.0.9") {
		t.Error("ApplyProbe() applied an out-of-range result")
	}
	if s.Len() != 2 {
		t.Errorf("probing changed store length to %d", s.Len())
	}

	// Index reused by a different host after a remove+add.
	if s.ApplyProbe(0, "other.example.com", StatusReachable, "10.0.0.9") {
		t.Error("ApplyProbe() applied a result for a replaced host")
	}
	if h, _ := s.Host(0); h.Status != StatusUnknown {
		t.Errorf("stale result mutated host 0 status to %v", h.Status)
	}
}
