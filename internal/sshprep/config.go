package sshprep

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// acceptNewPattern matches an existing StrictHostKeyChecking accept-new
// directive, tolerating "=" and mixed whitespace between keyword and value.
var acceptNewPattern = regexp.MustCompile(`(?i)StrictHostKeyChecking[\s=]+accept-new`)

// acceptNewBlock is appended to the client config when the directive is
// missing. accept-new records unknown host keys on first contact but still
// fails hard when a known key changes.
const acceptNewBlock = "\n# Automatically accept new host keys\nHost *\n    StrictHostKeyChecking accept-new\n"

// HasAcceptNew reports whether the config file at path already sets
// StrictHostKeyChecking to accept-new. A missing file counts as not set.
func HasAcceptNew(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read SSH config: %w", err)
	}
	return acceptNewPattern.Match(content), nil
}

// EnsureAcceptNew appends the accept-new directive to the config file at path
// unless it is already present. The file and its parent directory are created
// if needed, and the file is left with 0600 permissions. The call is
// idempotent.
func EnsureAcceptNew(path string) error {
	has, err := HasAcceptNew(path)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create SSH directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open SSH config: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(acceptNewBlock); err != nil {
		return fmt.Errorf("failed to update SSH config: %w", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set SSH config permissions: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the user's SSH client config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}
