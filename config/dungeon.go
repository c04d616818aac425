package config

import (
	"errors"
	"fmt"
	"time"
)

// Default dungeon dimensions
const (
	DefaultWidth            = 100
	DefaultHeight           = 100
	DefaultMinPartitionSize = 20

	// Room sampling needs a one cell margin on each side of the partition
	minPartitionFloor = 3
)

// DoorOffsetMode selects how far along a wall a door is placed
type DoorOffsetMode int

const (
	// DoorOffsetNarrow draws the offset from the fixed range {1, 2}
	DoorOffsetNarrow DoorOffsetMode = iota
	// DoorOffsetProportional draws the offset uniformly over the wall length
	DoorOffsetProportional
)

func (m DoorOffsetMode) String() string {
	switch m {
	case DoorOffsetNarrow:
		return "narrow"
	case DoorOffsetProportional:
		return "proportional"
	default:
		return fmt.Sprintf("DoorOffsetMode(%d)", int(m))
	}
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid dungeon config")

// ConfigError reports which field failed validation
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// DungeonConfig holds the parameters of one generation run
type DungeonConfig struct {
	Width            int   // Grid column count
	Height           int   // Grid row count
	MinPartitionSize int   // Lower bound on terminal partition dimensions
	Seed             int64 // Determines the full run

	DoorOffset DoorOffsetMode
	Verbose    bool // Log partition processing to stderr
}

// DefaultDungeonConfig returns a 100x100 grid with a clock derived seed
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		MinPartitionSize: DefaultMinPartitionSize,
		Seed:             time.Now().UnixNano(),
		DoorOffset:       DoorOffsetNarrow,
	}
}

// Validate checks that the root partition can reach a terminal partition
// with room for at least one cell of interior
func (c DungeonConfig) Validate() error {
	if c.MinPartitionSize < minPartitionFloor {
		return &ConfigError{
			Field:   "MinPartitionSize",
			Message: fmt.Sprintf("must be greater than 2, got %d", c.MinPartitionSize),
		}
	}
	if c.Width < c.MinPartitionSize {
		return &ConfigError{
			Field:   "Width",
			Message: fmt.Sprintf("must be at least MinPartitionSize (%d), got %d", c.MinPartitionSize, c.Width),
		}
	}
	if c.Height < c.MinPartitionSize {
		return &ConfigError{
			Field:   "Height",
			Message: fmt.Sprintf("must be at least MinPartitionSize (%d), got %d", c.MinPartitionSize, c.Height),
		}
	}
	if c.DoorOffset != DoorOffsetNarrow && c.DoorOffset != DoorOffsetProportional {
		return &ConfigError{
			Field:   "DoorOffset",
			Message: fmt.Sprintf("unknown mode %d", int(c.DoorOffset)),
		}
	}
	return nil
}
