package types

// Effective limits for liquid cargo, as a percentage of max capacity.
const (
	liquidDangerousPct = 50
	liquidSafePct      = 90
)

// Liquid is a container for liquid cargo. Dangerous liquids may only fill
// half the container; other liquids may fill 90% of it.
type Liquid struct {
	cargo
	dangerous bool
}

// NewLiquid creates a liquid container with the next KON-L id from seq.
func NewLiquid(seq *Sequencer, maxCapacity, emptyWeight float64, dangerous bool, opts ...Option) (*Liquid, error) {
	c, err := newCargo(seq, KindLiquid, maxCapacity, emptyWeight, opts)
	if err != nil {
		return nil, err
	}
	return &Liquid{cargo: c, dangerous: dangerous}, nil
}

// IsDangerous reports whether the liquid is flagged as hazardous.
func (l *Liquid) IsDangerous() bool { return l.dangerous }

// Limit returns 50% of max capacity for dangerous liquids, 90% otherwise.
func (l *Liquid) Limit() float64 {
	if l.dangerous {
		return percentOf(l.maxCapacity, liquidDangerousPct)
	}
	return percentOf(l.maxCapacity, liquidSafePct)
}

// Load adds amount within the liquid limit.
func (l *Liquid) Load(amount float64) error {
	return l.loadUpTo(amount, l.Limit())
}

// Empty drains the container completely.
func (l *Liquid) Empty() { l.load = 0 }

// NotifyHazard writes a hazard warning for containerID.
func (l *Liquid) NotifyHazard(containerID string) { l.notifyHazard(containerID) }
