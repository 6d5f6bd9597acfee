package types

import (
	"errors"
	"fmt"
)

// Container errors.
var (
	ErrOverfill        = errors.New("container overfilled")
	ErrInvalidAmount   = errors.New("load amount must be a positive number")
	ErrInvalidCapacity = errors.New("max capacity must be a positive number")
	ErrInvalidWeight   = errors.New("empty weight must be a non-negative number")
	ErrSequencerNil    = errors.New("sequencer is nil")
)

// Ship errors.
var (
	ErrCapacityExceeded = errors.New("ship container capacity exceeded")
	ErrWeightExceeded   = errors.New("ship weight limit exceeded")
	ErrNilContainer     = errors.New("container is nil")
)

// OverfillError reports a load that would push a container past its
// effective capacity limit. It matches ErrOverfill with errors.Is.
type OverfillError struct {
	ContainerID string
	Current     float64
	Requested   float64
	Limit       float64
}

// Error implements the error interface.
func (e *OverfillError) Error() string {
	return fmt.Sprintf("%s: %s: load %g + %g exceeds limit %g",
		ErrOverfill, e.ContainerID, e.Current, e.Requested, e.Limit)
}

// Unwrap returns ErrOverfill.
func (e *OverfillError) Unwrap() error { return ErrOverfill }

// CapacityExceededError reports an insertion into a ship whose roster is
// already at MaxContainers. It matches ErrCapacityExceeded.
type CapacityExceededError struct {
	Ship          string
	MaxContainers int
}

// Error implements the error interface.
func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: ship %q already holds %d containers",
		ErrCapacityExceeded, e.Ship, e.MaxContainers)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// WeightExceededError reports an insertion that would push a ship past
// MaxWeight. It matches ErrWeightExceeded.
type WeightExceededError struct {
	Ship      string
	Current   float64
	Added     float64
	MaxWeight float64
}

// Error implements the error interface.
func (e *WeightExceededError) Error() string {
	return fmt.Sprintf("%s: ship %q weight %g + %g exceeds %g",
		ErrWeightExceeded, e.Ship, e.Current, e.Added, e.MaxWeight)
}

// Unwrap returns ErrWeightExceeded.
func (e *WeightExceededError) Unwrap() error { return ErrWeightExceeded }
