package config

import (
	"errors"
	"fmt"
)

// Validate reports every invalid field at once.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Gameplay.FallPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.fall_period_ms must be positive, got %d", c.Gameplay.FallPeriodMS))
	}
	if c.Gameplay.MinFallPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.min_fall_period_ms must be positive, got %d", c.Gameplay.MinFallPeriodMS))
	} else if c.Gameplay.FallPeriodMS > 0 && c.Gameplay.MinFallPeriodMS > c.Gameplay.FallPeriodMS {
		errs = append(errs, fmt.Errorf("gameplay.min_fall_period_ms (%d) exceeds fall_period_ms (%d)",
			c.Gameplay.MinFallPeriodMS, c.Gameplay.FallPeriodMS))
	}

	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %g", d.InitialLevel))
	}
	switch d.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", d.Progression.Type))
	}
	if d.Progression.MaxAt < 0 {
		errs = append(errs, fmt.Errorf("difficulty.progression.max_at must not be negative, got %d", d.Progression.MaxAt))
	}
	if d.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %g", d.Scaling.SpeedMultiplier))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
