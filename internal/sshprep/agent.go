package sshprep

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/agent"
)

var (
	// ErrNoAgent means no ssh-agent socket was found or reachable.
	ErrNoAgent = errors.New("ssh-agent is not running")

	// ErrNoKeys means the agent is running but holds no identities.
	ErrNoKeys = errors.New("no SSH keys loaded in ssh-agent")

	// ErrNoStrongKeys means the agent holds keys but none of an
	// acceptable type.
	ErrNoStrongKeys = errors.New("no ED25519, ECDSA, or RSA keys loaded in ssh-agent")
)

// strongKeyPrefixes lists the agent key types accepted for deployment.
var strongKeyPrefixes = []string{
	"ssh-ed25519",
	"sk-ssh-ed25519",
	"ecdsa-sha2-",
	"sk-ecdsa-sha2-",
	"ssh-rsa",
}

// AuditAgent verifies that a usable ssh-agent is available. It returns nil
// when the agent holds at least one strong key, and one of the Err* sentinels
// otherwise.
func AuditAgent() error {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return ErrNoAgent
	}

	conn, err := net.Dial("unix", sock)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoAgent, err)
	}
	defer conn.Close()

	keys, err := agent.NewClient(conn).List()
	if err != nil {
		return fmt.Errorf("failed to list agent keys: %w", err)
	}
	return auditKeys(keyTypes(keys))
}

func keyTypes(keys []*agent.Key) []string {
	types := make([]string, len(keys))
	for i, k := range keys {
		types[i] = k.Type()
	}
	return types
}

// auditKeys applies the strength policy to a list of agent key types.
func auditKeys(types []string) error {
	if len(types) == 0 {
		return ErrNoKeys
	}
	for _, t := range types {
		for _, prefix := range strongKeyPrefixes {
			if strings.HasPrefix(t, prefix) {
				return nil
			}
		}
	}
	return ErrNoStrongKeys
}
