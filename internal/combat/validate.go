package combat

import (
	"errors"
	"fmt"
)

var (
	// ErrSameFighter rejects a fighter paired against itself. Names are
	// identity here.
	ErrSameFighter = errors.New("fighter cannot battle itself")
	// ErrDeadFighter rejects fighters with no hit points left.
	ErrDeadFighter = errors.New("fighter has no hit points left")
	// ErrInvalidPower rejects fighters whose power is not positive.
	ErrInvalidPower = errors.New("fighter power must be positive")
)

// ValidateForBattle gates a pairing before it reaches the arena; the
// arena itself never validates. Checks run in a fixed order (identity,
// then vitality, then power) so a pairing broken in several ways reports
// the same error every time.
func ValidateForBattle(a, b Fighter) error {
	if a.Name() == b.Name() {
		return fmt.Errorf("%w: %s", ErrSameFighter, a.Name())
	}
	if a.HP() == 0 {
		return fmt.Errorf("%w: %s", ErrDeadFighter, a.Name())
	}
	if b.HP() == 0 {
		return fmt.Errorf("%w: %s", ErrDeadFighter, b.Name())
	}
	if a.Power() <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPower, a.Name())
	}
	if b.Power() <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPower, b.Name())
	}
	return nil
}
