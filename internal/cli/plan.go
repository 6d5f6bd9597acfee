package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mesh-intelligence/shipyard/internal/manifest"
	"github.com/mesh-intelligence/shipyard/internal/report"
	"github.com/mesh-intelligence/shipyard/pkg/types"
)

type planFlags struct {
	remove    []string
	keepGoing bool
}

func newPlanCmd() *cobra.Command {
	var pf planFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Apply the voyage manifest from config.yaml",
		Long: "Read the ship and cargo list from config.yaml, build and load each container,\n" +
			"raise hazard warnings, remove the listed containers and print the ship.\n" +
			"Ship settings can be overridden by flags or SHIPYARD_SHIP_* variables.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, pf)
		},
	}

	f := cmd.Flags()
	f.String("name", "", "ship name")
	f.Float64("max-speed", 0, "ship max speed in knots")
	f.Int("max-containers", 0, "ship container limit")
	f.Float64("max-weight", 0, "ship weight limit in kg")
	f.StringSliceVar(&pf.remove, "remove", nil, "container ids to remove after loading")
	f.BoolVar(&pf.keepGoing, "keep-going", false, "report rejected operations and continue")

	return cmd
}

// shipFlagKeys maps plan flags onto manifest config keys.
var shipFlagKeys = map[string]string{
	"name":           manifest.KeyShipName,
	"max-speed":      manifest.KeyShipMaxSpeed,
	"max-containers": manifest.KeyShipMaxContainers,
	"max-weight":     manifest.KeyShipMaxWeight,
}

func runPlan(cmd *cobra.Command, pf planFlags) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve config directory: %w", err))
	}

	v, err := manifest.NewViper(configDir)
	if err != nil {
		return sysError(err)
	}
	if err := bindFlags(v.BindPFlag, cmd.Flags()); err != nil {
		return sysError(err)
	}

	m, err := manifest.Decode(v)
	if err != nil {
		return userError(err)
	}
	m.Remove = append(m.Remove, pf.remove...)

	p := newPrinter(cmd)
	p.Info("planning %d container(s) for %s", len(m.Cargo), m.Ship.Name)

	res, applyErr := manifest.Apply(m, types.NewSequencer(), manifest.Options{
		KeepGoing:    pf.keepGoing,
		HazardOutput: p.Hazard(),
		OnLoaded:     p.Loaded,
		OnRemoved: func(id string, n int) {
			if n == 0 {
				p.Warn("%s is not on board", id)
				return
			}
			p.Info("removed %s", id)
		},
		OnRejected: func(err error) { p.Fail("%v", err) },
	})
	if applyErr != nil && (!pf.keepGoing || res.Ship == nil) {
		return userError(applyErr)
	}

	if err := report.Write(cmd.OutOrStdout(), res.Ship.Info(), reportFormat()); err != nil {
		return sysError(err)
	}
	if applyErr != nil {
		return userError(applyErr)
	}
	return nil
}

// bindFlags binds the ship flags to their config keys. Viper only prefers a
// flag over config and env when the flag was set.
func bindFlags(bind func(string, *pflag.Flag) error, fs *pflag.FlagSet) error {
	for name, key := range shipFlagKeys {
		if err := bind(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
