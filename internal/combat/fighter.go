package combat

// Fighter is the full contract the arena needs from a combatant. Any
// implementation can enter a battle; tests use scripted stand-ins.
type Fighter interface {
	Name() string
	HP() int
	SetHP(hp int)
	Power() int
	Attack() int
	TakeDamage(amount int)
}

// Healer is an optional capability on top of Fighter. Callers probe for
// it with a type assertion and skip fighters that cannot heal.
type Healer interface {
	// Heal reports how many hit points one use of the recovery
	// technique restores.
	Heal() int
}

// DefaultHealAmount is the recovery value for classes that bring no
// healing technique of their own.
const DefaultHealAmount = 10
