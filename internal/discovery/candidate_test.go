package discovery

import "testing"

func TestCandidate_String(t *testing.T) {
	c := &Candidate{
		Hostname: "node1.local",
		IP:       "192.168.1.10",
		Port:     22,
	}
	expected := "node1.local (192.168.1.10) ssh port 22"
	if c.String() != expected {
		t.Errorf("Candidate.String() = %v, want %v", c.String(), expected)
	}
}

func TestCandidate_InventoryName(t *testing.T) {
	tests := []struct {
		hostname string
		want     string
	}{
		{"node1.local.", "node1.local"},
		{"node1.local", "node1.local"},
	}
	for _, tt := range tests {
		c := &Candidate{Hostname: tt.hostname}
		if got := c.InventoryName(); got != tt.want {
			t.Errorf("InventoryName(%q) = %q, want %q", tt.hostname, got, tt.want)
		}
	}
}
