package capture

import "sync"

// ManualEngine is an Engine fed programmatically. The listen command uses
// it to turn typed input into partial transcripts, and tests use it to
// script engine behavior. It is not a speech recognizer.
type ManualEngine struct {
	mu          sync.Mutex
	events      chan<- Event
	lastPartial string
	authorized  bool
	available   bool
	// FinalOnStop makes Stop deliver the accumulated partial as the final
	// transcript, mimicking a recognizer returning its best hypothesis.
	FinalOnStop bool
}

// NewManualEngine returns an authorized, available manual engine that
// finalizes on stop.
func NewManualEngine() *ManualEngine {
	return &ManualEngine{authorized: true, available: true, FinalOnStop: true}
}

// SetAuthorized controls the permission check result.
func (m *ManualEngine) SetAuthorized(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authorized = ok
}

// SetAvailable controls the availability check result.
func (m *ManualEngine) SetAvailable(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = ok
}

// Authorized implements Engine.
func (m *ManualEngine) Authorized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authorized
}

// Available implements Engine.
func (m *ManualEngine) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// Start implements Engine.
func (m *ManualEngine) Start(events chan<- Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = events
	m.lastPartial = ""
	return nil
}

// Stop implements Engine.
func (m *ManualEngine) Stop() {
	m.mu.Lock()
	events := m.events
	partial := m.lastPartial
	finalOnStop := m.FinalOnStop
	m.mu.Unlock()
	if events != nil && finalOnStop {
		events <- Event{Kind: EventFinal, Transcript: partial}
	}
}

// Cancel implements Engine.
func (m *ManualEngine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
	m.lastPartial = ""
}

// EmitPartial delivers a cumulative partial transcript.
func (m *ManualEngine) EmitPartial(text string) {
	m.mu.Lock()
	events := m.events
	m.lastPartial = text
	m.mu.Unlock()
	if events != nil {
		events <- Event{Kind: EventPartial, Transcript: text}
	}
}

// EmitFinal delivers a final transcript directly.
func (m *ManualEngine) EmitFinal(text string) {
	m.mu.Lock()
	events := m.events
	m.mu.Unlock()
	if events != nil {
		events <- Event{Kind: EventFinal, Transcript: text}
	}
}

// EmitError delivers an engine error.
func (m *ManualEngine) EmitError(err error) {
	m.mu.Lock()
	events := m.events
	m.mu.Unlock()
	if events != nil {
		events <- Event{Kind: EventError, Err: err}
	}
}
