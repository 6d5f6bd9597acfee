package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shipyard/internal/manifest"
)

const defaultConfigHeader = `# Shipyard voyage manifest.
# ship: fixed limits of the ship. cargo: containers to build, add and load,
# in order. remove: container ids to take off afterwards.
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config directory and a default manifest",
		Long:  "Create the configuration directory and write config.yaml describing the\nreference voyage. An existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve config directory: %w", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := filepath.Join(configDir, manifest.ConfigFile)
	created, err := writeConfigIfMissing(path)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already present at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing writes the default manifest to path unless a file
// already exists there. It reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	m := manifest.Default()
	data, err := yaml.Marshal(&m)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	content := append([]byte(defaultConfigHeader), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
