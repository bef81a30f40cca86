package capture

import "time"

// Phase is the controller's position in the session lifecycle.
type Phase int

const (
	// PhaseIdle means no session is active.
	PhaseIdle Phase = iota
	// PhaseRecording means audio is streaming and partials may arrive.
	PhaseRecording
	// PhaseFinishing means a stop was requested and the controller is
	// waiting for the engine's final result.
	PhaseFinishing
	// PhaseError means the session failed with no usable transcript and is
	// waiting to be acknowledged.
	PhaseError
)

// String renders the phase for logs and the TUI.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRecording:
		return "recording"
	case PhaseFinishing:
		return "finishing"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of the recording session, owned exclusively by the
// controller and published on its state stream. Only one session exists at
// a time.
type State struct {
	StartedAt         time.Time
	LastSpeechAt      time.Time
	Message           string
	Transcript        string
	Phase             Phase
	HasDetectedSpeech bool
}
