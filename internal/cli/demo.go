package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shipyard/internal/report"
	"github.com/mesh-intelligence/shipyard/internal/ui"
	"github.com/mesh-intelligence/shipyard/pkg/types"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference voyage",
		Long: "Load a dangerous liquid, a gas and a cooled container onto the Ocean Carrier,\n" +
			"print the ship, take the liquid container off again and print the ship once more.",
		Args: cobra.NoArgs,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)
	out := cmd.OutOrStdout()
	format := reportFormat()

	ship, err := types.NewShip(types.ShipConfig{
		Name:          "Ocean Carrier",
		MaxSpeed:      20,
		MaxContainers: 5,
		MaxWeight:     50000,
	})
	if err != nil {
		return userError(err)
	}

	seq := types.NewSequencer()
	hazard := types.WithHazardOutput(p.Hazard())

	liquid, err := types.NewLiquid(seq, 100, 10, true, hazard)
	if err != nil {
		return userError(err)
	}
	if err := boardAndLoad(p, ship, liquid, 40); err != nil {
		return err
	}

	gas, err := types.NewGas(seq, 50, 5, 10, hazard)
	if err != nil {
		return userError(err)
	}
	if err := boardAndLoad(p, ship, gas, 30); err != nil {
		return err
	}

	cooled, err := types.NewCooled(seq, 80, 15, -5)
	if err != nil {
		return userError(err)
	}
	if err := boardAndLoad(p, ship, cooled, 60); err != nil {
		return err
	}

	if err := report.Write(out, ship.Info(), format); err != nil {
		return sysError(err)
	}

	ship.RemoveContainer(liquid.ID())
	p.Info("removed %s container %s", liquid.Kind(), liquid.ID())

	if err := report.Write(out, ship.Info(), format); err != nil {
		return sysError(err)
	}
	return nil
}

// boardAndLoad adds c to ship, loads amount into it and raises a hazard
// warning when c is hazardous.
func boardAndLoad(p *ui.Printer, ship *types.Ship, c types.Container, amount float64) error {
	if err := ship.AddContainer(c); err != nil {
		p.Fail("%v", err)
		return userError(fmt.Errorf("add %s: %w", c.ID(), err))
	}
	if err := c.Load(amount); err != nil {
		p.Fail("%v", err)
		return userError(fmt.Errorf("load %s: %w", c.ID(), err))
	}
	p.Loaded(c, amount)
	types.NotifyIfHazardous(c)
	return nil
}
