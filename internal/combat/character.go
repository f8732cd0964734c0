package combat

import "fmt"

// Class selects the attack and recovery formulas a character uses.
// There is one concrete character type; specializations are data on it,
// not subtypes.
type Class int

const (
	ClassFighter Class = iota
	ClassTitanShifter
	ClassSorcerer
)

// String returns the stable id used in roster files and event payloads.
func (c Class) String() string {
	switch c {
	case ClassTitanShifter:
		return "titan_shifter"
	case ClassSorcerer:
		return "sorcerer"
	default:
		return "fighter"
	}
}

// ParseClass maps a roster id onto its Class. The empty id means the
// plain fighter, so rosters may omit the field.
func ParseClass(id string) (Class, error) {
	switch id {
	case "", "fighter":
		return ClassFighter, nil
	case "titan_shifter":
		return ClassTitanShifter, nil
	case "sorcerer":
		return ClassSorcerer, nil
	default:
		return 0, fmt.Errorf("unknown class %q", id)
	}
}

const (
	titanAttackBonus   = 15
	sorcererHealAmount = 25
	shieldMax          = 100
)

// Character is a combatant from one of the three source universes. The
// shield soaks damage before hp and always stays within 0..100; hp never
// drops below 0.
type Character struct {
	name     string
	universe Universe
	class    Class
	hp       int
	power    int
	shield   int

	titanForm    string
	cursedEnergy int

	// Emit, when set, receives one event per observable state change.
	Emit func(Event)
}

var (
	_ Fighter = (*Character)(nil)
	_ Healer  = (*Character)(nil)
)

// NewCharacter builds a plain fighter.
func NewCharacter(name string, hp, power int, universe Universe) *Character {
	if hp < 0 {
		hp = 0
	}
	return &Character{name: name, hp: hp, power: power, universe: universe}
}

// NewTitanShifter builds a fighter that can assume the given titan form.
func NewTitanShifter(name string, hp, power int, universe Universe, titanForm string) *Character {
	c := NewCharacter(name, hp, power, universe)
	c.class = ClassTitanShifter
	c.titanForm = titanForm
	return c
}

// NewSorcerer builds a fighter whose techniques draw on cursed energy.
func NewSorcerer(name string, hp, power int, universe Universe, cursedEnergy int) *Character {
	c := NewCharacter(name, hp, power, universe)
	c.class = ClassSorcerer
	c.cursedEnergy = cursedEnergy
	return c
}

func (c *Character) Name() string       { return c.name }
func (c *Character) Universe() Universe { return c.universe }
func (c *Character) Class() Class       { return c.class }
func (c *Character) Power() int         { return c.power }
func (c *Character) HP() int            { return c.hp }

// TitanForm returns the assumed form, empty for anyone else.
func (c *Character) TitanForm() string { return c.titanForm }

// CursedEnergy returns the reserve backing sorcerer techniques.
func (c *Character) CursedEnergy() int { return c.cursedEnergy }

// SetHP clamps negative values to zero.
func (c *Character) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	c.hp = hp
}

// Shield reports the current shield charge.
func (c *Character) Shield() int { return c.shield }

// SetShield accepts values in [0, 100] only; anything else is ignored
// and the previous charge stays in place.
func (c *Character) SetShield(shield int) {
	if shield < 0 || shield > shieldMax {
		return
	}
	c.shield = shield
}

// Attack computes the damage one strike deals.
func (c *Character) Attack() int {
	switch c.class {
	case ClassTitanShifter:
		return c.power + titanAttackBonus
	case ClassSorcerer:
		return c.power + c.cursedEnergy/10
	default:
		return c.power
	}
}

// Heal reports the hit points one use of the character's recovery
// technique restores. Only sorcerers replace the default.
func (c *Character) Heal() int {
	if c.class == ClassSorcerer {
		return sorcererHealAmount
	}
	return DefaultHealAmount
}

// TakeDamage soaks amount into the shield first; the remainder comes out
// of hp, clamped at zero. Negative amounts count as zero.
func (c *Character) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	absorbed := amount
	if absorbed > c.shield {
		absorbed = c.shield
	}
	c.shield -= absorbed
	c.hp -= amount - absorbed
	if c.hp < 0 {
		c.hp = 0
	}
	c.emit(Event{Type: "Damage", Payload: map[string]any{
		"target":   c.name,
		"damage":   amount,
		"absorbed": absorbed,
		"hp":       c.hp,
		"shield":   c.shield,
	}})
}

// Status emits a diagnostic snapshot of the character.
func (c *Character) Status() {
	payload := map[string]any{
		"name":     c.name,
		"universe": c.universe.String(),
		"class":    c.class.String(),
		"hp":       c.hp,
		"power":    c.power,
		"shield":   c.shield,
	}
	if c.titanForm != "" {
		payload["titan_form"] = c.titanForm
	}
	if c.cursedEnergy > 0 {
		payload["cursed_energy"] = c.cursedEnergy
	}
	c.emit(Event{Type: "Status", Payload: payload})
}

func (c *Character) emit(ev Event) {
	if c.Emit != nil {
		c.Emit(ev)
	}
}
