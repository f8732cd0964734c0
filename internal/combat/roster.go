package combat

import (
	"fmt"

	"animearena/internal/config"
)

// BuildRoster turns roster definitions into live characters, keeping
// file order. Shield values outside [0, 100] are dropped the same way
// the setter drops them, so such fighters start with no charge.
func BuildRoster(cfg *config.RosterConfig) ([]*Character, error) {
	roster := make([]*Character, 0, len(cfg.Fighters))
	for _, def := range cfg.Fighters {
		c, err := buildFighter(def)
		if err != nil {
			return nil, err
		}
		roster = append(roster, c)
	}
	return roster, nil
}

func buildFighter(def config.FighterDef) (*Character, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("fighter without a name")
	}
	universe, err := ParseUniverse(def.Universe)
	if err != nil {
		return nil, fmt.Errorf("fighter %s: %w", def.Name, err)
	}
	class, err := ParseClass(def.Class)
	if err != nil {
		return nil, fmt.Errorf("fighter %s: %w", def.Name, err)
	}

	var c *Character
	switch class {
	case ClassTitanShifter:
		c = NewTitanShifter(def.Name, def.HP, def.Power, universe, def.TitanForm)
	case ClassSorcerer:
		c = NewSorcerer(def.Name, def.HP, def.Power, universe, def.CursedEnergy)
	default:
		c = NewCharacter(def.Name, def.HP, def.Power, universe)
	}
	c.SetShield(def.Shield)
	return c, nil
}
