package capture

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"voxpense/internal/common"
)

// Config holds the timing knobs for silence detection. The defaults are
// tuning values, not contracts; they can be overridden from configuration.
type Config struct {
	// SilenceThreshold is how long after the last detected speech the
	// session auto-stops.
	SilenceThreshold time.Duration
	// MinSpeechDuration is the minimum total recording time before an
	// auto-stop may fire, so a brief accidental noise cannot end the
	// session instantly.
	MinSpeechDuration time.Duration
	// TickInterval is the silence poll period.
	TickInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.SilenceThreshold <= 0 {
		c.SilenceThreshold = 2500 * time.Millisecond
	}
	if c.MinSpeechDuration <= 0 {
		c.MinSpeechDuration = 700 * time.Millisecond
	}
	if c.TickInterval <= 0 {
		c.TickInterval = 500 * time.Millisecond
	}
	return c
}

// Controller drives a single recording session at a time. Engine callbacks
// and the silence tick arrive from other goroutines; every transition runs
// under one mutex, so no interleaving can leave the state machine
// inconsistent. Callbacks to the caller are invoked outside the lock.
type Controller struct {
	engine  Engine
	clock   Clock
	cfg     Config
	states  chan State
	mu      sync.Mutex
	state   State
	onFinal func(string)
	onError func(error)
	session uint64
	// starting marks a Start call that has passed the idle check but has
	// not yet transitioned to Recording. Only one Start may own the start
	// path at a time; concurrent starts are no-ops like start-while-active.
	starting bool
	// tickStop is closed to cancel the silence poll whenever the state
	// leaves Recording, so a stale tick can never fire a transition.
	tickStop chan struct{}
}

// NewController creates an idle controller over the given engine.
func NewController(engine Engine, clock Clock, cfg Config) *Controller {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		engine: engine,
		clock:  clock,
		cfg:    cfg.withDefaults(),
		states: make(chan State, 32),
		state:  State{Phase: PhaseIdle},
	}
}

// States is the observable state stream. Every transition publishes a
// snapshot; slow consumers lose the oldest snapshots, never the newest.
func (c *Controller) States() <-chan State {
	return c.states
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins a capture session. Permission and availability failures are
// reported synchronously. A start while a session is already active is a
// logged no-op, not an error.
func (c *Controller) Start(onFinal func(transcript string), onError func(err error)) error {
	c.mu.Lock()
	if c.starting || c.state.Phase == PhaseRecording || c.state.Phase == PhaseFinishing {
		phase := c.state.Phase
		c.mu.Unlock()
		slog.Warn("capture session already active, ignoring start", "phase", phase)
		return nil
	}
	c.starting = true
	c.mu.Unlock()

	if !c.engine.Authorized() {
		c.abortStart()
		return common.ErrPermissionDenied
	}
	if !c.engine.Available() {
		c.abortStart()
		return common.ErrEngineUnavailable
	}

	events := make(chan Event, 16)
	if err := c.engine.Start(events); err != nil {
		c.abortStart()
		return fmt.Errorf("%w: %v", common.ErrEngineUnavailable, err)
	}

	now := c.clock.Now()
	c.mu.Lock()
	c.starting = false
	c.session++
	session := c.session
	c.onFinal = onFinal
	c.onError = onError
	c.tickStop = make(chan struct{})
	tickStop := c.tickStop
	c.state = State{
		Phase:        PhaseRecording,
		StartedAt:    now,
		LastSpeechAt: now,
	}
	c.publishLocked()
	c.mu.Unlock()

	go c.consumeEvents(events, session)
	go c.tickLoop(tickStop, session)

	slog.Info("capture session started",
		"silence_threshold", c.cfg.SilenceThreshold,
		"min_speech_duration", c.cfg.MinSpeechDuration)
	return nil
}

// abortStart releases the start path after a synchronous probe failure.
func (c *Controller) abortStart() {
	c.mu.Lock()
	c.starting = false
	c.mu.Unlock()
}

// Stop requests a graceful finish: the session moves to Finishing and any
// accumulated transcript is still processed.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state.Phase != PhaseRecording {
		c.mu.Unlock()
		return
	}
	c.beginFinishingLocked("manual stop")
	c.mu.Unlock()
	c.engine.Stop()
}

// CancelForBackground tears the session down immediately. The in-flight
// transcript is discarded and no expense is created; this is cancel, not
// finish.
func (c *Controller) CancelForBackground() {
	c.mu.Lock()
	if c.state.Phase != PhaseRecording && c.state.Phase != PhaseFinishing {
		c.mu.Unlock()
		return
	}
	c.stopTickLocked()
	c.session++ // fence any in-flight engine events
	c.state = State{Phase: PhaseIdle}
	c.publishLocked()
	c.mu.Unlock()

	c.engine.Cancel()
	slog.Info("capture session canceled for backgrounding")
}

// Acknowledge clears an error state back to idle.
func (c *Controller) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Phase != PhaseError {
		return
	}
	c.state = State{Phase: PhaseIdle}
	c.publishLocked()
}

func (c *Controller) consumeEvents(events <-chan Event, session uint64) {
	for ev := range events {
		switch ev.Kind {
		case EventPartial:
			c.handlePartial(ev.Transcript, session)
		case EventFinal:
			c.handleFinal(ev.Transcript, session)
		case EventError:
			c.handleEngineError(ev.Err, session)
		}
	}
}

func (c *Controller) tickLoop(stop <-chan struct{}, session uint64) {
	ticker := c.clock.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			c.silenceCheck(session)
		}
	}
}

// handlePartial records speech activity and resets the silence clock. It
// never finishes the session by itself.
func (c *Controller) handlePartial(transcript string, session uint64) {
	if transcript == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != session || c.state.Phase != PhaseRecording {
		return
	}
	c.state.HasDetectedSpeech = true
	c.state.LastSpeechAt = c.clock.Now()
	c.state.Transcript = transcript
	c.publishLocked()
}

// silenceCheck fires the auto-stop when speech was detected, the silence
// threshold has elapsed since the last partial, and the session is old
// enough. All three guards must hold.
func (c *Controller) silenceCheck(session uint64) {
	c.mu.Lock()
	if c.session != session || c.state.Phase != PhaseRecording {
		c.mu.Unlock()
		return
	}
	now := c.clock.Now()
	if !c.state.HasDetectedSpeech ||
		now.Sub(c.state.LastSpeechAt) < c.cfg.SilenceThreshold ||
		now.Sub(c.state.StartedAt) < c.cfg.MinSpeechDuration {
		c.mu.Unlock()
		return
	}
	c.beginFinishingLocked("silence detected")
	c.mu.Unlock()
	c.engine.Stop()
}

// handleFinal completes the session and hands the transcript to the caller.
func (c *Controller) handleFinal(transcript string, session uint64) {
	c.mu.Lock()
	if c.session != session || (c.state.Phase != PhaseFinishing && c.state.Phase != PhaseRecording) {
		c.mu.Unlock()
		return
	}
	if transcript == "" {
		transcript = c.state.Transcript
	}
	onFinal := c.onFinal
	onError := c.onError
	c.stopTickLocked()
	if transcript == "" {
		// Nothing was ever recognized.
		c.state = State{Phase: PhaseError, Message: "no speech detected"}
		c.publishLocked()
		c.mu.Unlock()
		if onError != nil {
			onError(common.ErrRecognitionFailed)
		}
		return
	}
	c.state = State{Phase: PhaseIdle}
	c.publishLocked()
	c.mu.Unlock()

	slog.Info("capture session finished", "transcript_len", len(transcript))
	if onFinal != nil {
		onFinal(transcript)
	}
}

// handleEngineError downgrades recognition errors to success when a usable
// partial transcript exists; minor "no match" hiccups should not surface as
// user-visible failures.
func (c *Controller) handleEngineError(err error, session uint64) {
	c.mu.Lock()
	if c.session != session || c.state.Phase == PhaseIdle || c.state.Phase == PhaseError {
		c.mu.Unlock()
		return
	}
	partial := c.state.Transcript
	onFinal := c.onFinal
	onError := c.onError
	c.stopTickLocked()

	if partial != "" {
		c.state = State{Phase: PhaseIdle}
		c.publishLocked()
		c.mu.Unlock()
		slog.Warn("engine error with usable partial transcript, treating as success", "error", err)
		if onFinal != nil {
			onFinal(partial)
		}
		return
	}

	message := "recognition failed"
	if err != nil {
		message = err.Error()
	}
	c.state = State{Phase: PhaseError, Message: message}
	c.publishLocked()
	c.mu.Unlock()
	slog.Error("capture session failed", "error", err)
	if onError != nil {
		onError(fmt.Errorf("%w: %v", common.ErrRecognitionFailed, err))
	}
}

// beginFinishingLocked moves Recording to Finishing and cancels the tick.
func (c *Controller) beginFinishingLocked(reason string) {
	c.stopTickLocked()
	c.state.Phase = PhaseFinishing
	c.state.Message = reason
	c.publishLocked()
	slog.Debug("capture session finishing", "reason", reason)
}

func (c *Controller) stopTickLocked() {
	if c.tickStop != nil {
		close(c.tickStop)
		c.tickStop = nil
	}
}

// publishLocked pushes a state snapshot, dropping the oldest snapshot when
// the consumer lags.
func (c *Controller) publishLocked() {
	snapshot := c.state
	for {
		select {
		case c.states <- snapshot:
			return
		default:
			select {
			case <-c.states:
			default:
			}
		}
	}
}
