package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Ship carries an ordered roster of containers within fixed count and
// weight limits. The limits are enforced when a container is added; loads
// changed afterwards are not re-checked (see Overweight).
//
// The roster holds the caller's container values, so later Load and Empty
// calls on a container are visible through the ship.
type Ship struct {
	ShipID string // UUID v7, generated on creation.
	config ShipConfig
	roster []Container
}

// NewShip validates cfg and returns an empty ship.
func NewShip(cfg ShipConfig) (*Ship, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate ship id: %w", err)
	}
	return &Ship{ShipID: id.String(), config: cfg}, nil
}

func (s *Ship) Name() string       { return s.config.Name }
func (s *Ship) MaxSpeed() float64  { return s.config.MaxSpeed }
func (s *Ship) MaxContainers() int { return s.config.MaxContainers }
func (s *Ship) MaxWeight() float64 { return s.config.MaxWeight }
func (s *Ship) Config() ShipConfig { return s.config }
func (s *Ship) Len() int           { return len(s.roster) }

// AddContainer appends c to the roster. The count limit is checked first,
// then the weight limit. The roster is unchanged on error.
func (s *Ship) AddContainer(c Container) error {
	if c == nil {
		return ErrNilContainer
	}
	if len(s.roster) >= s.config.MaxContainers {
		return &CapacityExceededError{Ship: s.config.Name, MaxContainers: s.config.MaxContainers}
	}
	current := s.TotalWeight()
	added := c.EmptyWeight() + c.CurrentLoad()
	if current+added > s.config.MaxWeight {
		return &WeightExceededError{
			Ship:      s.config.Name,
			Current:   current,
			Added:     added,
			MaxWeight: s.config.MaxWeight,
		}
	}
	s.roster = append(s.roster, c)
	return nil
}

// RemoveContainer drops every roster entry with the given id and returns
// how many were removed. Removing an absent id is a no-op.
func (s *Ship) RemoveContainer(id string) int {
	kept := s.roster[:0]
	for _, c := range s.roster {
		if c.ID() != id {
			kept = append(kept, c)
		}
	}
	removed := len(s.roster) - len(kept)
	for i := len(kept); i < len(s.roster); i++ {
		s.roster[i] = nil
	}
	s.roster = kept
	return removed
}

// TotalWeight sums empty weight and current load over the roster.
func (s *Ship) TotalWeight() float64 {
	var total float64
	for _, c := range s.roster {
		total += c.Weight()
	}
	return total
}

// Overweight reports whether the roster currently exceeds MaxWeight. This
// can only happen when containers are loaded after being added.
func (s *Ship) Overweight() bool {
	return s.TotalWeight() > s.config.MaxWeight
}

// Containers returns the roster in insertion order. The slice is a copy;
// the containers are shared.
func (s *Ship) Containers() []Container {
	out := make([]Container, len(s.roster))
	copy(out, s.roster)
	return out
}

// Container returns the first roster entry with the given id.
func (s *Ship) Container(id string) (Container, bool) {
	for _, c := range s.roster {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}
