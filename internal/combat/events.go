package combat

// Event is one transcript entry. Round is set on the arena's own round
// markers; events emitted by characters themselves (damage, status)
// carry 0.
type Event struct {
	Round   int
	Type    string
	Payload map[string]any
}
