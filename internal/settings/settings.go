package settings

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Zorlin/sparx/internal/logging"
)

const (
	appName      = "sparx"
	settingsFile = "settings.yaml"
)

// Settings are the process-wide values edited through the wizard's input
// fields. Username and VirtualIP are the load-bearing ones; SSHKeyPath is a
// cache of the detected key so repeated runs stay stable.
type Settings struct {
	// Username is the SSH user for every target machine.
	Username string `yaml:"username"`

	// VirtualIP is the HA floating address in CIDR form, e.g. "192.168.1.200/24".
	VirtualIP string `yaml:"virtual_ip"`

	// SSHKeyPath is the private key handed to the deployment engine.
	SSHKeyPath string `yaml:"ssh_key_path,omitempty"`
}

// Defaults returns the settings used when nothing has been persisted yet.
// The username falls back to the invoking user, matching what a direct SSH
// connection would do.
func Defaults() *Settings {
	s := &Settings{}
	if u, err := user.Current(); err == nil {
		s.Username = u.Username
	}
	return s
}

// Dir returns the OS-appropriate configuration directory for Sparx:
//   - Linux: $XDG_CONFIG_HOME/sparx or $HOME/.config/sparx
//   - macOS: $HOME/.config/sparx
//   - Windows: %LOCALAPPDATA%\sparx
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			return filepath.Join(userProfile, "AppData", "Local", appName), nil
		}
		return filepath.Join(localAppData, appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// DefaultPath returns the full path of the settings file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

// Load reads settings from path. A missing or corrupt file yields empty
// settings rather than an error; previously persisted settings are
// convenience, not critical state. Username stays empty when the file did
// not provide one so callers can layer in weaker sources with
// ResolveUsername.
func Load(path string) *Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("settings file unreadable, using defaults",
				zap.String("path", path), zap.Error(err))
		}
		return &Settings{}
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		logging.Warn("settings file corrupt, using defaults",
			zap.String("path", path), zap.Error(err))
		return &Settings{}
	}
	return &s
}

// ResolveUsername fills Username when the persisted settings did not carry
// one: first from fallback, typically the username stored in the inventory
// file, then from the invoking user. A username the user saved earlier is
// never overwritten.
func (s *Settings) ResolveUsername(fallback string) {
	if s.Username == "" {
		s.Username = fallback
	}
	if s.Username == "" {
		s.Username = Defaults().Username
	}
}

// Save writes the settings to path atomically with user-only permissions.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings file: %w", err)
	}

	logging.Debug("settings saved", zap.String("path", path))
	return nil
}
