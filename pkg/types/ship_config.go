package types

import "errors"

// ShipConfig holds the fixed parameters of a Ship.
type ShipConfig struct {
	Name          string  `json:"name" yaml:"name" mapstructure:"name"`
	MaxSpeed      float64 `json:"max_speed" yaml:"max_speed" mapstructure:"max_speed"`
	MaxContainers int     `json:"max_containers" yaml:"max_containers" mapstructure:"max_containers"`
	MaxWeight     float64 `json:"max_weight" yaml:"max_weight" mapstructure:"max_weight"`
}

// Ship config validation errors.
var (
	ErrShipNameEmpty        = errors.New("ship name must not be empty")
	ErrMaxSpeedInvalid      = errors.New("max speed must be a non-negative number")
	ErrMaxContainersInvalid = errors.New("max containers must be positive")
	ErrMaxWeightInvalid     = errors.New("max weight must be a positive number")
)

// Validate checks that the ShipConfig is well-formed. It returns a sentinel
// error from this package on failure.
func (c ShipConfig) Validate() error {
	if c.Name == "" {
		return ErrShipNameEmpty
	}
	if !finite(c.MaxSpeed) || c.MaxSpeed < 0 {
		return ErrMaxSpeedInvalid
	}
	if c.MaxContainers <= 0 {
		return ErrMaxContainersInvalid
	}
	if !finite(c.MaxWeight) || c.MaxWeight <= 0 {
		return ErrMaxWeightInvalid
	}
	return nil
}
