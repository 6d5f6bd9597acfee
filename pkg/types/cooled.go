package types

// Cooled is a refrigerated container held at a fixed temperature.
// It has no hazard notification.
type Cooled struct {
	cargo
	temperature float64
}

// NewCooled creates a cooled container with the next KON-C id from seq.
func NewCooled(seq *Sequencer, maxCapacity, emptyWeight, temperature float64, opts ...Option) (*Cooled, error) {
	c, err := newCargo(seq, KindCooled, maxCapacity, emptyWeight, opts)
	if err != nil {
		return nil, err
	}
	return &Cooled{cargo: c, temperature: temperature}, nil
}

// Temperature returns the set temperature in degrees Celsius.
func (c *Cooled) Temperature() float64 { return c.temperature }

func (c *Cooled) Limit() float64 { return c.maxCapacity }

func (c *Cooled) Load(amount float64) error {
	return c.loadUpTo(amount, c.Limit())
}

// Empty drains the container completely.
func (c *Cooled) Empty() { c.load = 0 }
