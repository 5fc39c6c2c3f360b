package core

// Event is something noteworthy that happened during a step. The platform
// uses events for sound cues and logging.
type Event int

const (
	EventWallBounce Event = iota + 1
	EventPaddleHit
	EventScore
	EventGameOver
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}
