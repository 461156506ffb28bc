package sshprep

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/crypto/ssh"
)

// preferredKeyNames is the probe order for well-known private key file names.
var preferredKeyNames = []string{
	"id_ed25519",
	"id_ecdsa",
	"id_rsa",
	"identity",
}

// DetectKeyPath picks the private key path to reference in generated cluster
// configs. The first well-known name that exists in dir wins, then any other
// file that parses as a private key. When nothing is found it falls back to
// id_rsa in dir so the generated config still points somewhere conventional.
func DetectKeyPath(dir string) string {
	for _, name := range preferredKeyNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	entries, err := os.ReadDir(dir)
	if err == nil {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) == ".pub" {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			path := filepath.Join(dir, name)
			if isPrivateKey(path) {
				return path
			}
		}
	}

	return filepath.Join(dir, "id_rsa")
}

// DefaultKeyDir returns the user's SSH key directory.
func DefaultKeyDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ssh"), nil
}

// isPrivateKey reports whether path holds a private key. Encrypted keys
// count: the agent holds the decrypted identity, the config only needs the
// path.
func isPrivateKey(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, err = ssh.ParseRawPrivateKey(data)
	if err == nil {
		return true
	}
	var passErr *ssh.PassphraseMissingError
	return errors.As(err, &passErr)
}
