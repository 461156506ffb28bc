package cluster

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Zorlin/sparx/internal/inventory"
	"github.com/Zorlin/sparx/internal/logging"
	"github.com/Zorlin/sparx/internal/settings"
)

const (
	// K0sVersion is the product version pinned into every generated config.
	K0sVersion = "v1.30.4+k0s.0"

	// DefaultFileName is the config file written into the working directory.
	DefaultFileName = "k0sctl.yaml"

	// DefaultSSHPort is the SSH port written for every host entry.
	DefaultSSHPort = 22

	apiVersion  = "k0sctl.k0sproject.io/v1beta1"
	kind        = "Cluster"
	clusterName = "sparx"

	// keepalived truncates authPass beyond 8 characters, so the token is
	// exactly 8 hex digits.
	authPassBytes = 4
)

// Generator writes the cluster-topology document for one config path.
type Generator struct {
	// Path is where the document is written.
	Path string
}

// NewGenerator returns a generator targeting path, or DefaultFileName in
// the current directory when path is empty.
func NewGenerator(path string) *Generator {
	if path == "" {
		path = DefaultFileName
	}
	return &Generator{Path: path}
}

// roleName maps an inventory role to the k0sctl role string.
func roleName(r inventory.Role) string {
	switch r {
	case inventory.RoleWorker:
		return "worker"
	case inventory.RoleController:
		return "controller"
	default:
		return "controller+worker"
	}
}

// Build assembles the document without touching the filesystem. Exposed so
// tests can inspect derivation separately from persistence.
func Build(hosts []inventory.Host, s *settings.Settings, authPass string) *Document {
	doc := &Document{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata:   Metadata{Name: clusterName},
		Spec: Spec{
			K0s: K0s{
				Version: K0sVersion,
				Config: K0sConfig{
					Spec: K0sConfigSpec{
						Telemetry: Telemetry{Enabled: false},
					},
				},
			},
		},
	}

	for _, h := range hosts {
		if !h.Enabled {
			continue
		}
		doc.Spec.Hosts = append(doc.Spec.Hosts, HostEntry{
			SSH: SSH{
				Address: h.Address(),
				User:    s.Username,
				Port:    DefaultSSHPort,
				KeyPath: s.SSHKeyPath,
			},
			Role: roleName(h.Role),
		})
	}

	if s.VirtualIP != "" {
		doc.Spec.K0s.Config.Spec.Network = &Network{
			ControlPlaneLoadBalancing: ControlPlaneLoadBalancing{
				Enabled: true,
				Type:    "Keepalived",
				Keepalived: Keepalived{
					VRRPInstances: []VRRPInstance{{
						VirtualIPs: []string{s.VirtualIP},
						AuthPass:   authPass,
					}},
				},
			},
		}
	}

	return doc
}

// Generate derives the document from the inventory and settings and
// overwrites the config file. Unchanged inputs produce byte-identical
// output: the auth token is read back from the existing file rather than
// regenerated, and struct marshalling keeps field order stable.
func (g *Generator) Generate(hosts []inventory.Host, s *settings.Settings) error {
	authPass := LoadAuthPass(g.Path)
	if authPass == "" {
		var err error
		authPass, err = newAuthPass()
		if err != nil {
			return fmt.Errorf("failed to generate auth token: %w", err)
		}
	}

	doc := Build(hosts, s, authPass)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal cluster config: %w", err)
	}

	if dir := filepath.Dir(g.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	tmpPath := g.Path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write cluster config: %w", err)
	}
	if err := os.Rename(tmpPath, g.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save cluster config: %w", err)
	}

	logging.Debug("cluster config written",
		zap.String("path", g.Path),
		zap.Int("hosts", len(doc.Spec.Hosts)),
	)
	return nil
}

// LoadAuthPass extracts the previously persisted auth token from an
// existing config file. Missing or malformed files yield "", which makes
// the next Generate mint a fresh token.
func LoadAuthPass(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		logging.Warn("existing cluster config unreadable, token will be regenerated",
			zap.String("path", path), zap.Error(err))
		return ""
	}

	net := doc.Spec.K0s.Config.Spec.Network
	if net == nil || len(net.ControlPlaneLoadBalancing.Keepalived.VRRPInstances) == 0 {
		return ""
	}
	return net.ControlPlaneLoadBalancing.Keepalived.VRRPInstances[0].AuthPass
}

// newAuthPass mints a short hex token from a cryptographic source.
func newAuthPass() (string, error) {
	buf := make([]byte, authPassBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
