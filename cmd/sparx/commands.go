package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Zorlin/sparx/internal/cluster"
	"github.com/Zorlin/sparx/internal/deploy"
	"github.com/Zorlin/sparx/internal/discovery"
	"github.com/Zorlin/sparx/internal/hostpattern"
	"github.com/Zorlin/sparx/internal/inventory"
	"github.com/Zorlin/sparx/internal/probe"
	"github.com/Zorlin/sparx/internal/settings"
	"github.com/Zorlin/sparx/internal/sshprep"
	"github.com/Zorlin/sparx/internal/ui"
	"github.com/Zorlin/sparx/internal/wizard/tui"
)

// Command flags
var (
	hostsPath      string
	clusterPath    string
	scanTimeout    int
	skipPrep       bool
	kubeconfigPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&hostsPath, "hosts", "hosts.txt", "Host inventory file")
	rootCmd.PersistentFlags().StringVar(&clusterPath, "config", cluster.DefaultFileName, "Cluster config file")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(upCmd)
}

// wizardPaths resolves where the wizard's three files live.
func wizardPaths() (tui.Paths, error) {
	settingsPath, err := settings.DefaultPath()
	if err != nil {
		return tui.Paths{}, fmt.Errorf("failed to resolve settings path: %w", err)
	}
	return tui.Paths{
		Inventory: hostsPath,
		Cluster:   clusterPath,
		Settings:  settingsPath,
	}, nil
}

// wizardCmd launches the interactive inventory editor
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive inventory wizard",
	Long: `Launch the interactive host inventory wizard.

Add hosts individually or as patterns like node[1-4].example.com, watch
live reachability results, assign controller and worker roles, and set a
virtual IP for a highly available control plane. The host inventory and
cluster config are saved on every change.`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	paths, err := wizardPaths()
	if err != nil {
		return err
	}

	model, err := tui.NewModel(paths)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok || !m.Confirmed() {
		return nil
	}

	fmt.Printf("\n%d host(s) saved to %s, cluster config written to %s.\n", len(m.Hosts()), paths.Inventory, paths.Cluster)
	fmt.Println("Run 'sparx up' to deploy the cluster.")
	return nil
}

// expandCmd expands a hostname pattern without touching the inventory
var expandCmd = &cobra.Command{
	Use:   "expand <pattern>",
	Short: "Expand a hostname pattern",
	Long: `Expand a bracket pattern into the hostnames it covers.

Two range forms are supported: node[1-4] counts 1 to 4, and
node[01:10] counts with zero padding to the width of the lower bound.`,
	Example: `  # Simple numeric range
  sparx expand 'node[1-4].example.com'

  # Zero-padded range
  sparx expand 'node[01:12].example.com'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := hostpattern.Expand(args[0])
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

// probeCmd checks reachability of every host in the inventory
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe all inventory hosts",
	Long: `Resolve and TCP-probe every host in the inventory file.

Each host is resolved over DNS and then checked for an open SSH port.
Results update the stored addresses used in the generated cluster config.`,
	Example: `  sparx probe
  sparx probe --hosts staging-hosts.txt`,
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	store, username, err := inventory.Load(hostsPath)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return fmt.Errorf("no hosts in %s; run 'sparx' to add some", hostsPath)
	}

	printer := ui.NewPrinter(nil)
	printer.PrintHeader("host probe", "sparx probe", map[string]string{
		"Hosts": fmt.Sprintf("%d", store.Len()),
	})

	targets := make([]probe.Target, 0, store.Len())
	for i, h := range store.Hosts() {
		targets = append(targets, probe.Target{Index: i, Name: h.Name})
	}

	failed := 0
	for result := range probe.New().Start(targets) {
		store.ApplyProbe(result.Index, result.Name, result.Status, result.IPAddress)
		switch result.Status {
		case inventory.StatusReachable:
			printer.PrintItem(fmt.Sprintf("%s %-30s %s", ui.SuccessMarker, result.Name, result.IPAddress))
		default:
			failed++
			printer.PrintItem(fmt.Sprintf("%s %-30s %s", ui.FailureMarker, result.Name, result.Status))
		}
	}

	printer.Newline()
	if failed > 0 {
		printer.PrintMuted(fmt.Sprintf("%d of %d hosts unreachable", failed, store.Len()))
	} else {
		printer.PrintMuted("all hosts reachable")
	}

	// Freshly resolved addresses feed the generated config.
	if _, err := os.Stat(clusterPath); err == nil {
		settingsPath, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		cfg := settings.Load(settingsPath)
		cfg.ResolveUsername(username)
		if err := cluster.NewGenerator(clusterPath).Generate(store.Hosts(), cfg); err != nil {
			return err
		}
		printer.PrintMuted("updated " + clusterPath)
	}
	return nil
}

// discoverCmd browses the local network for SSH hosts
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover SSH hosts on the local network",
	Long: `Discover machines advertising SSH over mDNS.

Listens for _ssh._tcp service advertisements on the local network and
prints each machine's hostname and address, ready to paste into the
inventory wizard.`,
	Example: `  # Default 5-second scan
  sparx discover

  # Longer scan for slow networks
  sparx discover --timeout 15`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for SSH hosts (timeout: %ds)...\n\n", scanTimeout)

	candidates, err := discovery.Scan(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printer := ui.NewPrinter(nil)
	if len(candidates) == 0 {
		printer.Println("No hosts found.")
		printer.Newline()
		printer.PrintMuted("Troubleshooting:")
		printer.PrintMuted("  • mDNS requires multicast on the local network segment")
		printer.PrintMuted("  • Not every SSH server advertises itself; add hosts by name instead")
		printer.PrintMuted("  • Try increasing --timeout for slower networks")
		return nil
	}

	fmt.Printf("Found %d host(s):\n\n", len(candidates))
	for _, c := range candidates {
		printer.PrintItem(fmt.Sprintf("%-35s %s port %d", c.InventoryName(), c.IP, c.Port))
	}

	printer.Newline()
	printer.PrintMuted("Add any of these in the wizard: sparx")
	return nil
}

// configCmd regenerates the cluster config from the saved inventory
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Regenerate the cluster config",
	Long: `Regenerate the k0sctl config from the saved inventory and settings.

The HA authentication token already stored in the config file is kept,
so regenerating never disturbs a running control plane.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	store, username, err := inventory.Load(hostsPath)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return fmt.Errorf("no hosts in %s; run 'sparx' to add some", hostsPath)
	}

	settingsPath, err := settings.DefaultPath()
	if err != nil {
		return err
	}
	cfg := settings.Load(settingsPath)
	cfg.ResolveUsername(username)

	if err := cluster.NewGenerator(clusterPath).Generate(store.Hosts(), cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s for %d host(s).\n", clusterPath, store.Len())
	return nil
}

// upCmd deploys the cluster with k0sctl
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Deploy the cluster",
	Long: `Deploy the k0s cluster described by the generated config.

Before deploying, the local SSH environment is checked: a running
ssh-agent holding a strong key, and a client config that accepts new
host keys automatically. The actual rollout is performed by k0sctl
over SSH, streaming its progress to the terminal.`,
	Example: `  # Deploy using the default config
  sparx up

  # Skip the local SSH environment checks
  sparx up --skip-prep

  # Fetch the admin kubeconfig after a successful deploy
  sparx up --kubeconfig kubeconfig.yaml`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().BoolVar(&skipPrep, "skip-prep", false, "Skip local SSH environment checks")
	upCmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Write the admin kubeconfig here after deploying")
}

func runUp(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(nil)

	if _, err := os.Stat(clusterPath); err != nil {
		return fmt.Errorf("no cluster config at %s; run 'sparx' first", clusterPath)
	}

	if !skipPrep {
		if err := sshprep.AuditAgent(); err != nil {
			printer.PrintError("SSH environment check failed", err, []string{
				"Start an agent with: eval $(ssh-agent)",
				"Add a key with: ssh-add ~/.ssh/id_ed25519",
				"Skip the checks with: sparx up --skip-prep",
			})
			return err
		}
		configPath, err := sshprep.DefaultConfigPath()
		if err != nil {
			return err
		}
		if err := sshprep.EnsureAcceptNew(configPath); err != nil {
			return err
		}
	}

	if err := deploy.Apply(cmd.Context(), clusterPath); err != nil {
		printer.PrintError("Deployment failed", err, []string{
			"Check host reachability with: sparx probe",
			"Re-run sparx up; the rollout is idempotent",
		})
		return fmt.Errorf("deployment failed: %w", err)
	}

	details := map[string]string{"Config": clusterPath}
	if kubeconfigPath != "" {
		if err := deploy.Kubeconfig(cmd.Context(), clusterPath, kubeconfigPath); err != nil {
			return err
		}
		details["Kubeconfig"] = kubeconfigPath
	}
	printer.PrintSuccess("Cluster deployed", details)
	return nil
}
