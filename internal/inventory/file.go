package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Zorlin/sparx/internal/logging"
)

// Load reads a hosts file written by SaveFile. Each line is either
// "hostname" or "username@hostname"; blank lines and #-comments are
// ignored. A missing file is not an error and yields an empty store.
//
// The returned username is taken from the first "username@hostname" entry,
// if any. Callers use it to seed the cluster settings only when no username
// has been configured yet.
func Load(path string) (*Store, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewStore(), "", nil
		}
		return nil, "", fmt.Errorf("failed to open hosts file: %w", err)
	}
	defer f.Close()

	store := NewStore()
	var username string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name := line
		if user, host, found := strings.Cut(line, "@"); found {
			if username == "" && user != "" {
				username = user
			}
			name = host
		}
		if name == "" || store.Contains(name) {
			continue
		}
		store.hosts = append(store.hosts, NewHost(name))
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read hosts file: %w", err)
	}

	logging.Debug("hosts file loaded", zap.String("path", path), zap.Int("hosts", store.Len()))
	return store, username, nil
}

// SaveFile rewrites the hosts file wholesale: one line per enabled host in
// insertion order, prefixed with username@ when a username is known.
// External deployment glue consumes this exact layout.
//
// The write goes through a temporary file and an atomic rename so a crash
// cannot leave a half-written inventory behind.
func (s *Store) SaveFile(path, username string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create inventory directory: %w", err)
		}
	}

	var b strings.Builder
	for _, h := range s.hosts {
		if !h.Enabled {
			continue
		}
		if username != "" {
			b.WriteString(username)
			b.WriteByte('@')
		}
		b.WriteString(h.Name)
		b.WriteByte('\n')
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write hosts file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save hosts file: %w", err)
	}

	logging.Debug("hosts file written", zap.String("path", path))
	return nil
}
