// Package capture owns the speech recording session: a state machine that
// starts the speech engine, accumulates partial transcripts, auto-stops on
// trailing silence, and hands the final transcript to its caller.
package capture

// EventKind tags an engine event.
type EventKind int

const (
	// EventPartial carries an updated (cumulative) partial transcript.
	EventPartial EventKind = iota
	// EventFinal carries the engine's final transcript for the session.
	EventFinal
	// EventError reports an engine failure.
	EventError
)

// Event is a single notification from the speech engine. Partial events
// carry the full transcript so far, not a delta.
type Event struct {
	Err        error
	Transcript string
	Kind       EventKind
}

// Engine abstracts the audio/ASR backend. The controller is its only
// consumer; no other component touches the audio session. Implementations
// deliver events on the channel given to Start from whatever goroutine they
// like; the controller serializes them.
type Engine interface {
	// Authorized reports whether microphone and recognition permission is
	// granted.
	Authorized() bool
	// Available reports whether the recognizer can take a session now.
	Available() bool
	// Start opens an audio session and begins streaming events.
	Start(events chan<- Event) error
	// Stop requests a graceful finish; the engine should follow up with a
	// final or error event.
	Stop()
	// Cancel tears the session down immediately with no further events.
	Cancel()
}
