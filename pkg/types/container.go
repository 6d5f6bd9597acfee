package types

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Kind identifies a container variant.
type Kind string

// Container kinds.
const (
	KindLiquid Kind = "liquid"
	KindGas    Kind = "gas"
	KindCooled Kind = "cooled"
)

// kindCodes maps each kind to the type code used in container ids.
var kindCodes = map[Kind]string{
	KindLiquid: "L",
	KindGas:    "G",
	KindCooled: "C",
}

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown container kind")

// Code returns the single-letter type code for the kind, or "?" for
// an unrecognized kind.
func (k Kind) Code() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return "?"
}

// ParseKind accepts a kind name ("liquid") or type code ("L"),
// case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, code := range kindCodes {
		if s == string(k) || s == strings.ToLower(code) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Container is the capability set shared by every cargo variant.
// The set of implementations is closed: only Liquid, Gas and Cooled
// satisfy it.
type Container interface {
	ID() string
	Kind() Kind
	MaxCapacity() float64
	CurrentLoad() float64
	EmptyWeight() float64

	// Limit is the effective capacity limit; CurrentLoad never exceeds it.
	Limit() float64

	// Weight is EmptyWeight plus CurrentLoad.
	Weight() float64

	// Load adds amount to the current load. It returns an *OverfillError
	// when the result would exceed Limit and ErrInvalidAmount when amount
	// is not a finite positive number. State is unchanged on error.
	Load(amount float64) error

	// Empty resets the load according to the variant's policy.
	Empty()

	sealed()
}

// Option configures a container at construction.
type Option func(*cargo)

// WithHazardOutput sets where hazard warnings are written. The default is
// os.Stderr. Containers without hazard notification ignore it.
func WithHazardOutput(w io.Writer) Option {
	return func(c *cargo) {
		if w != nil {
			c.hazardOut = w
		}
	}
}

// cargo holds the state and behavior common to all variants.
type cargo struct {
	id          string
	kind        Kind
	maxCapacity float64
	emptyWeight float64
	load        float64
	hazardOut   io.Writer
}

// newCargo validates construction parameters and draws an id from seq.
// No id is consumed when validation fails.
func newCargo(seq *Sequencer, kind Kind, maxCapacity, emptyWeight float64, opts []Option) (cargo, error) {
	if seq == nil {
		return cargo{}, ErrSequencerNil
	}
	if !finite(maxCapacity) || maxCapacity <= 0 {
		return cargo{}, fmt.Errorf("%w: %g", ErrInvalidCapacity, maxCapacity)
	}
	if !finite(emptyWeight) || emptyWeight < 0 {
		return cargo{}, fmt.Errorf("%w: %g", ErrInvalidWeight, emptyWeight)
	}

	c := cargo{
		kind:        kind,
		maxCapacity: maxCapacity,
		emptyWeight: emptyWeight,
		hazardOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.id = seq.Next(kind)
	return c, nil
}

func (c *cargo) ID() string           { return c.id }
func (c *cargo) Kind() Kind           { return c.kind }
func (c *cargo) MaxCapacity() float64 { return c.maxCapacity }
func (c *cargo) CurrentLoad() float64 { return c.load }
func (c *cargo) EmptyWeight() float64 { return c.emptyWeight }
func (c *cargo) Weight() float64      { return c.emptyWeight + c.load }
func (c *cargo) sealed()              {}

// loadUpTo adds amount if the new load stays within limit.
func (c *cargo) loadUpTo(amount, limit float64) error {
	if !finite(amount) || amount <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidAmount, amount)
	}
	if c.load+amount > limit {
		return &OverfillError{
			ContainerID: c.id,
			Current:     c.load,
			Requested:   amount,
			Limit:       limit,
		}
	}
	c.load += amount
	return nil
}

// notifyHazard writes a single warning line for containerID.
func (c *cargo) notifyHazard(containerID string) {
	fmt.Fprintf(c.hazardOut, "hazard: dangerous cargo in %s container %s\n", c.kind, containerID)
}

// percentOf returns v*pct/100. Integer percents keep round boundaries exact.
func percentOf(v float64, pct int) float64 {
	return v * float64(pct) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

var (
	_ Container = (*Liquid)(nil)
	_ Container = (*Gas)(nil)
	_ Container = (*Cooled)(nil)
)
