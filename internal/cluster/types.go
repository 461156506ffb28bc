package cluster

// Document is the root of a k0sctl cluster definition, consumed by the
// external k0sctl binary.
type Document struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata names the cluster.
type Metadata struct {
	Name string `yaml:"name"`
}

// Spec carries the host list and the embedded k0s configuration.
type Spec struct {
	Hosts []HostEntry `yaml:"hosts"`
	K0s   K0s         `yaml:"k0s"`
}

// HostEntry is one SSH target tagged with its cluster role.
type HostEntry struct {
	SSH  SSH    `yaml:"ssh"`
	Role string `yaml:"role"`
}

// SSH holds the connection parameters for a host.
type SSH struct {
	Address string `yaml:"address"`
	User    string `yaml:"user"`
	Port    int    `yaml:"port"`
	KeyPath string `yaml:"keyPath,omitempty"`
}

// K0s pins the product version and embeds the cluster config.
type K0s struct {
	Version string    `yaml:"version"`
	Config  K0sConfig `yaml:"config"`
}

// K0sConfig is the embedded k0s configuration document.
type K0sConfig struct {
	Spec K0sConfigSpec `yaml:"spec"`
}

// K0sConfigSpec covers the settings Sparx manages: telemetry off and the
// HA networking block.
type K0sConfigSpec struct {
	Telemetry Telemetry `yaml:"telemetry"`
	Network   *Network  `yaml:"network,omitempty"`
}

// Telemetry controls k0s phone-home behaviour; always disabled here.
type Telemetry struct {
	Enabled bool `yaml:"enabled"`
}

// Network holds control-plane load balancing.
type Network struct {
	ControlPlaneLoadBalancing ControlPlaneLoadBalancing `yaml:"controlPlaneLoadBalancing"`
}

// ControlPlaneLoadBalancing describes the keepalived-backed floating IP
// shared across controller nodes.
type ControlPlaneLoadBalancing struct {
	Enabled    bool       `yaml:"enabled"`
	Type       string     `yaml:"type"`
	Keepalived Keepalived `yaml:"keepalived"`
}

// Keepalived carries the VRRP instances.
type Keepalived struct {
	VRRPInstances []VRRPInstance `yaml:"vrrpInstances"`
}

// VRRPInstance is one virtual-IP definition with its auth token.
type VRRPInstance struct {
	VirtualIPs []string `yaml:"virtualIPs"`
	AuthPass   string   `yaml:"authPass"`
}
