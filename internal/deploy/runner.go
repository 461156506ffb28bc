package deploy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/Zorlin/sparx/internal/logging"
)

// k0sctlBinary is the deployment tool looked up on PATH.
const k0sctlBinary = "k0sctl"

// ErrNotInstalled means the k0sctl binary could not be found on PATH.
var ErrNotInstalled = errors.New("k0sctl is not installed (see https://github.com/k0sproject/k0sctl#installation)")

// EnsureInstalled verifies that k0sctl is available and returns its path.
func EnsureInstalled() (string, error) {
	path, err := exec.LookPath(k0sctlBinary)
	if err != nil {
		return "", ErrNotInstalled
	}
	logging.Debug("found k0sctl", zap.String("path", path))
	return path, nil
}

// Apply runs "k0sctl apply" against the config at configPath. The child
// process inherits the terminal so the user sees deployment progress live.
func Apply(ctx context.Context, configPath string) error {
	bin, err := EnsureInstalled()
	if err != nil {
		return err
	}

	logging.Info("applying cluster config", zap.String("config", configPath))
	cmd := exec.CommandContext(ctx, bin, "apply", "--config", configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("k0sctl apply failed: %w", err)
	}
	return nil
}

// Kubeconfig fetches the cluster's admin kubeconfig via "k0sctl kubeconfig"
// and writes it to outPath with owner-only permissions.
func Kubeconfig(ctx context.Context, configPath, outPath string) error {
	bin, err := EnsureInstalled()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, "kubeconfig", "--config", configPath)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("k0sctl kubeconfig failed: %w", err)
	}

	if err := os.WriteFile(outPath, out, 0600); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}
	logging.Info("wrote kubeconfig", zap.String("path", outPath))
	return nil
}
