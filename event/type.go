package event

// EventType identifies a discrete simulation occurrence
// Events carry no payload beyond their identity and the tick they fired on
type EventType int

const (
	// EventEat fires when the player head consumes a resource
	EventEat EventType = iota

	// EventOpponentSpawned fires when the spawner adds an opponent
	EventOpponentSpawned

	// EventOpponentDied fires once per opponent killed by the player or a projectile
	// Opponents leaving the grid are purged silently
	EventOpponentDied

	// EventPlayerDied fires on the transition to game over
	EventPlayerDied

	// EventShotFired fires when the player launches a projectile
	EventShotFired

	// EventOpponentShot fires when an aggressive opponent launches a projectile
	EventOpponentShot

	// EventVictory fires when the player reaches the win length
	EventVictory

	// EventRoundStarted fires on every start or restart
	EventRoundStarted

	eventTypeCount
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventEat:
		return "Eat"
	case EventOpponentSpawned:
		return "OpponentSpawned"
	case EventOpponentDied:
		return "OpponentDied"
	case EventPlayerDied:
		return "PlayerDied"
	case EventShotFired:
		return "ShotFired"
	case EventOpponentShot:
		return "OpponentShot"
	case EventVictory:
		return "Victory"
	case EventRoundStarted:
		return "RoundStarted"
	default:
		return "Unknown"
	}
}

// AllTypes lists every event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
