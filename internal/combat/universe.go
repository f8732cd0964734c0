package combat

import "fmt"

// Universe identifies the source series a character fights under.
type Universe int

const (
	AttackOnTitan Universe = iota
	JujutsuKaisen
	DemonSlayer
)

// String returns the stable id used in roster files and event payloads.
func (u Universe) String() string {
	switch u {
	case AttackOnTitan:
		return "attack_on_titan"
	case JujutsuKaisen:
		return "jujutsu_kaisen"
	case DemonSlayer:
		return "demon_slayer"
	default:
		return "unknown"
	}
}

// Title returns the display name of the series.
func (u Universe) Title() string {
	switch u {
	case AttackOnTitan:
		return "Attack on Titan"
	case JujutsuKaisen:
		return "Jujutsu Kaisen"
	case DemonSlayer:
		return "Demon Slayer"
	default:
		return "Unknown Universe"
	}
}

// ParseUniverse maps a roster id onto its Universe.
func ParseUniverse(id string) (Universe, error) {
	switch id {
	case "attack_on_titan":
		return AttackOnTitan, nil
	case "jujutsu_kaisen":
		return JujutsuKaisen, nil
	case "demon_slayer":
		return DemonSlayer, nil
	default:
		return 0, fmt.Errorf("unknown universe %q", id)
	}
}
