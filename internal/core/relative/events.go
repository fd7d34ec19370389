package relative

import "time"

// State represents the current Formatter mode.
type State string

const (
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateStopped State = "stopped"
)

// EventType defines the type of Formatter event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventRendered    EventType = "rendered"
	EventRenderError EventType = "render_error"
)

// Event represents a Formatter update for observers.
type Event struct {
	Type     EventType
	State    State
	Rendered int
	Message  string
	At       time.Time
}
