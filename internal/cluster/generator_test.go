package cluster

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/Zorlin/sparx/internal/inventory"
	"github.com/Zorlin/sparx/internal/settings"
)

func testSettings() *settings.Settings {
	return &settings.Settings{
		Username:   "wings",
		VirtualIP:  "192.168.1.200/24",
		SSHKeyPath: "/home/wings/.ssh/id_ed25519",
	}
}

func testHosts() []inventory.Host {
	h1 := inventory.NewHost("n1.example.com")
	h1.Role = inventory.RoleController
	h1.IPAddress = "10.0.0.1"
	h1.Status = inventory.StatusReachable

	h2 := inventory.NewHost("n2.example.com")
	h2.Role = inventory.RoleWorker

	h3 := inventory.NewHost("n3.example.com")

	disabled := inventory.NewHost("spare.example.com")
	disabled.Enabled = false

	return []inventory.Host{h1, h2, h3, disabled}
}

func TestBuild_HostEntries(t *testing.T) {
	doc := Build(testHosts(), testSettings(), "deadbeef")

	// The disabled host must not appear.
	if len(doc.Spec.Hosts) != 3 {
		t.Fatalf("got %d host entries, want 3", len(doc.Spec.Hosts))
	}

	tests := []struct {
		index   int
		address string
		role    string
	}{
		{0, "10.0.0.1", "controller"},       // resolved IP wins
		{1, "n2.example.com", "worker"},     // unresolved host keeps its name
		{2, "n3.example.com", "controller+worker"}, // both maps to the combined role
	}
	for _, tt := range tests {
		entry := doc.Spec.Hosts[tt.index]
		if entry.SSH.Address != tt.address {
			t.Errorf("host %d address = %q, want %q", tt.index, entry.SSH.Address, tt.address)
		}
		if entry.Role != tt.role {
			t.Errorf("host %d role = %q, want %q", tt.index, entry.Role, tt.role)
		}
		if entry.SSH.Port != 22 {
			t.Errorf("host %d port = %d, want 22", tt.index, entry.SSH.Port)
		}
		if entry.SSH.User != "wings" {
			t.Errorf("host %d user = %q, want wings", tt.index, entry.SSH.User)
		}
		if entry.SSH.KeyPath != "/home/wings/.ssh/id_ed25519" {
			t.Errorf("host %d keyPath = %q", tt.index, entry.SSH.KeyPath)
		}
	}
}

func TestBuild_GlobalSection(t *testing.T) {
	doc := Build(testHosts(), testSettings(), "deadbeef")

	if doc.Spec.K0s.Version != K0sVersion {
		t.Errorf("k0s version = %q, want %q", doc.Spec.K0s.Version, K0sVersion)
	}
	if doc.Spec.K0s.Config.Spec.Telemetry.Enabled {
		t.Error("telemetry must be disabled")
	}

	net := doc.Spec.K0s.Config.Spec.Network
	if net == nil {
		t.Fatal("network block missing despite a virtual IP")
	}
	cplb := net.ControlPlaneLoadBalancing
	if !cplb.Enabled || cplb.Type != "Keepalived" {
		t.Errorf("CPLB = %+v, want enabled Keepalived", cplb)
	}
	if len(cplb.Keepalived.VRRPInstances) != 1 {
		t.Fatal("expected one VRRP instance")
	}
	vrrp := cplb.Keepalived.VRRPInstances[0]
	if len(vrrp.VirtualIPs) != 1 || vrrp.VirtualIPs[0] != "192.168.1.200/24" {
		t.Errorf("virtual IPs = %v", vrrp.VirtualIPs)
	}
	if vrrp.AuthPass != "deadbeef" {
		t.Errorf("authPass = %q, want deadbeef", vrrp.AuthPass)
	}
}

func TestBuild_NoVirtualIP(t *testing.T) {
	s := testSettings()
	s.VirtualIP = ""

	doc := Build(testHosts(), s, "deadbeef")
	if doc.Spec.K0s.Config.Spec.Network != nil {
		t.Error("network block should be omitted without a virtual IP")
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k0sctl.yaml")
	g := NewGenerator(path)

	if err := g.Generate(testHosts(), testSettings()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Generate(testHosts(), testSettings()); err != nil {
		t.Fatalf("Generate() second call error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("unchanged inputs produced different output")
	}
}

func TestGenerate_AuthPassStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k0sctl.yaml")
	g := NewGenerator(path)

	if err := g.Generate(testHosts(), testSettings()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	token := LoadAuthPass(path)
	if !regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(token) {
		t.Fatalf("auth token = %q, want 8 hex chars", token)
	}

	// A membership change must not rotate the token of a running HA setup.
	hosts := append(testHosts(), inventory.NewHost("n4.example.com"))
	if err := g.Generate(hosts, testSettings()); err != nil {
		t.Fatalf("Generate() after change error = %v", err)
	}
	if got := LoadAuthPass(path); got != token {
		t.Errorf("auth token rotated from %q to %q", token, got)
	}
}

func TestLoadAuthPass_MissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()

	if got := LoadAuthPass(filepath.Join(dir, "absent.yaml")); got != "" {
		t.Errorf("missing file token = %q, want empty", got)
	}

	corrupt := filepath.Join(dir, "corrupt.yaml")
	if err := os.WriteFile(corrupt, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := LoadAuthPass(corrupt); got != "" {
		t.Errorf("corrupt file token = %q, want empty", got)
	}
}
