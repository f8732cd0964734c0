package combat

// battleRounds fixes how many exchanges one battle can run.
const battleRounds = 3

// Observer receives battle lifecycle notifications. The arena holds it
// as a plain optional reference and skips notification when it is nil.
type Observer interface {
	OnBattleStart(a, b string)
	OnBattleEnd(winner string)
}

// Arena hosts battles. It keeps no state between fights, so a single
// arena can run any number of them in sequence.
type Arena struct {
	// Observer, when non-nil, is told exactly once about the start and
	// once about the end of every fight.
	Observer Observer
	// Emit, when non-nil, receives round events for the transcript.
	Emit func(Event)
}

// Fight runs up to three rounds between a and b and returns the winner.
// Each round a strikes first; b strikes back only if still standing, and
// once either side drops to 0 hp no further exchanges happen. Whoever
// keeps strictly more hp wins, so a tie goes to a.
func (ar *Arena) Fight(a, b Fighter) Fighter {
	if ar.Observer != nil {
		ar.Observer.OnBattleStart(a.Name(), b.Name())
	}
	for round := 1; round <= battleRounds; round++ {
		ar.emit(Event{Round: round, Type: "RoundStart", Payload: map[string]any{
			"a": a.Name(),
			"b": b.Name(),
		}})
		b.TakeDamage(a.Attack())
		if b.HP() == 0 {
			break
		}
		a.TakeDamage(b.Attack())
		if a.HP() == 0 {
			break
		}
	}
	winner := a
	if b.HP() > a.HP() {
		winner = b
	}
	if ar.Observer != nil {
		ar.Observer.OnBattleEnd(winner.Name())
	}
	return winner
}

func (ar *Arena) emit(ev Event) {
	if ar.Emit != nil {
		ar.Emit(ev)
	}
}
