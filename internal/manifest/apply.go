package manifest

import (
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

// Options controls Apply.
type Options struct {
	// KeepGoing reports rejected operations through OnRejected and moves on
	// instead of stopping at the first one.
	KeepGoing bool

	// HazardOutput receives hazard warnings. Nil means os.Stderr.
	HazardOutput io.Writer

	OnLoaded   func(c types.Container, amount float64)
	OnRemoved  func(id string, n int)
	OnRejected func(err error)
}

// Result is the outcome of Apply.
type Result struct {
	Ship *types.Ship

	// Built lists every container created, including ones that were later
	// rejected by the ship or removed from it.
	Built []types.Container

	// Hazards lists the ids that raised a hazard warning.
	Hazards []string
}

// Build creates the container described by c, drawing its id from seq.
func (c Cargo) Build(seq *types.Sequencer, opts ...types.Option) (types.Container, error) {
	kind, err := types.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case types.KindLiquid:
		return types.NewLiquid(seq, c.MaxCapacity, c.EmptyWeight, c.Dangerous, opts...)
	case types.KindGas:
		return types.NewGas(seq, c.MaxCapacity, c.EmptyWeight, c.Pressure, opts...)
	default:
		return types.NewCooled(seq, c.MaxCapacity, c.EmptyWeight, c.Temperature, opts...)
	}
}

// Apply builds the ship and works through the cargo list in order: each
// container is built, added to the ship and then loaded. Hazardous
// containers on board are then notified and the Remove ids are taken off.
//
// Without KeepGoing the first rejected operation stops the run; the
// partially loaded ship is still returned alongside the error. With
// KeepGoing every rejection is collected and returned joined.
func Apply(m Manifest, seq *types.Sequencer, opts Options) (Result, error) {
	ship, err := types.NewShip(m.Ship)
	if err != nil {
		return Result{}, fmt.Errorf("ship: %w", err)
	}
	res := Result{Ship: ship}

	var rejected []error
	reject := func(err error) error {
		if opts.OnRejected != nil {
			opts.OnRejected(err)
		}
		if !opts.KeepGoing {
			return err
		}
		rejected = append(rejected, err)
		return nil
	}

	var containerOpts []types.Option
	if opts.HazardOutput != nil {
		containerOpts = append(containerOpts, types.WithHazardOutput(opts.HazardOutput))
	}

	for i, cargo := range m.Cargo {
		c, err := cargo.Build(seq, containerOpts...)
		if err != nil {
			if err := reject(fmt.Errorf("cargo %d (%s): %w", i+1, cargo.Kind, err)); err != nil {
				return res, err
			}
			continue
		}
		res.Built = append(res.Built, c)

		if err := ship.AddContainer(c); err != nil {
			if err := reject(fmt.Errorf("add %s: %w", c.ID(), err)); err != nil {
				return res, err
			}
			continue
		}

		if cargo.Load > 0 {
			if err := c.Load(cargo.Load); err != nil {
				if err := reject(fmt.Errorf("load %s: %w", c.ID(), err)); err != nil {
					return res, err
				}
				continue
			}
			if opts.OnLoaded != nil {
				opts.OnLoaded(c, cargo.Load)
			}
		}
	}

	for _, c := range ship.Containers() {
		if types.NotifyIfHazardous(c) {
			res.Hazards = append(res.Hazards, c.ID())
		}
	}

	for _, id := range m.Remove {
		n := ship.RemoveContainer(id)
		if opts.OnRemoved != nil {
			opts.OnRemoved(id, n)
		}
	}

	return res, errors.Join(rejected...)
}
