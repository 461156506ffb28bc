package inventory

// Role describes what a host does in the cluster.
type Role int

const (
	// RoleWorker runs workloads only.
	RoleWorker Role = iota
	// RoleController runs the control plane only.
	RoleController
	// RoleBoth runs the control plane and workloads.
	RoleBoth
)

// Next returns the role that follows in the cycle
// worker → controller → both → worker.
func (r Role) Next() Role {
	switch r {
	case RoleWorker:
		return RoleController
	case RoleController:
		return RoleBoth
	default:
		return RoleWorker
	}
}

// String returns the display name for the role.
func (r Role) String() string {
	switch r {
	case RoleWorker:
		return "worker"
	case RoleController:
		return "controller"
	case RoleBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Status is the reachability state of a host as last observed by the prober.
type Status int

const (
	// StatusUnknown means the host has never been probed.
	StatusUnknown Status = iota
	// StatusChecking means a probe is in flight.
	StatusChecking
	// StatusReachable means DNS resolved and TCP port 22 accepted.
	StatusReachable
	// StatusUnreachable means DNS resolved but the connect attempt failed.
	StatusUnreachable
	// StatusDNSFailed means the name did not resolve.
	StatusDNSFailed
)

// String returns the display name for the status.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusChecking:
		return "checking"
	case StatusReachable:
		return "reachable"
	case StatusUnreachable:
		return "unreachable"
	case StatusDNSFailed:
		return "dns failed"
	default:
		return "unknown"
	}
}

// Host is one target machine in the inventory.
type Host struct {
	// Name is the hostname or dotted-quad address the user entered.
	Name string

	// Enabled hosts are written to the hosts file and the cluster config;
	// disabled hosts stay in the inventory but are excluded from both.
	Enabled bool

	// Role is the host's cluster role assignment.
	Role Role

	// IPAddress is the resolved address; it defaults to Name until a probe
	// resolves it.
	IPAddress string

	// Status is the last observed reachability state.
	Status Status
}

// NewHost returns a Host with the defaults applied to a freshly added entry:
// enabled, role both, ip equal to the name, status unknown.
func NewHost(name string) Host {
	return Host{
		Name:      name,
		Enabled:   true,
		Role:      RoleBoth,
		IPAddress: name,
		Status:    StatusUnknown,
	}
}

// Address returns the best known address for connecting to the host: the
// resolved IP when a probe has supplied one, otherwise the name.
func (h Host) Address() string {
	if h.IPAddress != "" {
		return h.IPAddress
	}
	return h.Name
}
