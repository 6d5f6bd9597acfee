package types

// gasResiduePct is the share of the load left behind when a gas
// container is emptied.
const gasResiduePct = 5

// Gas is a pressurized gas container. It fills to full capacity, and
// emptying it leaves 5% of the load as residue.
type Gas struct {
	cargo
	pressure float64
}

// NewGas creates a gas container with the next KON-G id from seq.
func NewGas(seq *Sequencer, maxCapacity, emptyWeight, pressure float64, opts ...Option) (*Gas, error) {
	c, err := newCargo(seq, KindGas, maxCapacity, emptyWeight, opts)
	if err != nil {
		return nil, err
	}
	return &Gas{cargo: c, pressure: pressure}, nil
}

// Pressure returns the container pressure in atmospheres.
func (g *Gas) Pressure() float64 { return g.pressure }

// Limit returns the full max capacity.
func (g *Gas) Limit() float64 { return g.maxCapacity }

// Load adds amount up to max capacity.
func (g *Gas) Load(amount float64) error {
	return g.loadUpTo(amount, g.Limit())
}

// Empty keeps 5% of the current load.
func (g *Gas) Empty() { g.load = percentOf(g.load, gasResiduePct) }

// NotifyHazard writes a hazard warning for containerID.
func (g *Gas) NotifyHazard(containerID string) { g.notifyHazard(containerID) }
