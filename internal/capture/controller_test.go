package capture

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpense/internal/common"
)

// fakeClock drives the silence poll deterministically.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	ticks chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ticks: make(chan time.Time),
	}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Tick delivers one silence poll. Callers must only tick while a session
// is recording, otherwise nothing consumes the send.
func (f *fakeClock) Tick() {
	f.ticks <- f.Now()
}

func (f *fakeClock) NewTicker(time.Duration) Ticker {
	return fakeTicker{ch: f.ticks}
}

type fakeTicker struct {
	ch chan time.Time
}

func (t fakeTicker) Chan() <-chan time.Time { return t.ch }
func (fakeTicker) Stop()                    {}

// resultSink collects controller callbacks.
type resultSink struct {
	mu         sync.Mutex
	transcript string
	finalCount int
	err        error
	errCount   int
}

func (r *resultSink) onFinal(transcript string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcript = transcript
	r.finalCount++
}

func (r *resultSink) onError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	r.errCount++
}

func (r *resultSink) finals() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transcript, r.finalCount
}

func (r *resultSink) errors() (error, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err, r.errCount
}

func newTestController() (*Controller, *ManualEngine, *fakeClock, *resultSink) {
	engine := NewManualEngine()
	clock := newFakeClock()
	controller := NewController(engine, clock, Config{
		SilenceThreshold:  2 * time.Second,
		MinSpeechDuration: time.Second,
		TickInterval:      500 * time.Millisecond,
	})
	return controller, engine, clock, &resultSink{}
}

func waitForPhase(t *testing.T, c *Controller, phase Phase) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().Phase == phase
	}, time.Second, time.Millisecond, "expected phase %s", phase)
}

func waitForSpeech(t *testing.T, c *Controller) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().HasDetectedSpeech
	}, time.Second, time.Millisecond)
}

func TestControllerAutoStopsAfterSilence(t *testing.T) {
	controller, engine, clock, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	assert.Equal(t, PhaseRecording, controller.Snapshot().Phase)

	engine.EmitPartial("spent 50 dirhams on groceries")
	waitForSpeech(t, controller)

	// Past both the silence threshold and the minimum duration.
	clock.Advance(3 * time.Second)
	clock.Tick()

	require.Eventually(t, func() bool {
		_, count := sink.finals()
		return count == 1
	}, time.Second, time.Millisecond)

	transcript, _ := sink.finals()
	assert.Equal(t, "spent 50 dirhams on groceries", transcript)
	assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
	_, errCount := sink.errors()
	assert.Zero(t, errCount)
}

func TestControllerSilenceGuards(t *testing.T) {
	t.Run("no auto-stop before any speech", func(t *testing.T) {
		controller, _, clock, sink := newTestController()
		require.NoError(t, controller.Start(sink.onFinal, sink.onError))

		clock.Advance(10 * time.Second)
		clock.Tick()

		assert.Equal(t, PhaseRecording, controller.Snapshot().Phase)
	})

	t.Run("no auto-stop before minimum duration", func(t *testing.T) {
		engine := NewManualEngine()
		clock := newFakeClock()
		controller := NewController(engine, clock, Config{
			SilenceThreshold:  100 * time.Millisecond,
			MinSpeechDuration: 10 * time.Second,
			TickInterval:      500 * time.Millisecond,
		})
		sink := &resultSink{}
		require.NoError(t, controller.Start(sink.onFinal, sink.onError))

		engine.EmitPartial("hi")
		waitForSpeech(t, controller)

		clock.Advance(2 * time.Second)
		clock.Tick()

		assert.Equal(t, PhaseRecording, controller.Snapshot().Phase)
	})

	t.Run("no auto-stop while speech is fresh", func(t *testing.T) {
		controller, engine, clock, sink := newTestController()
		require.NoError(t, controller.Start(sink.onFinal, sink.onError))

		engine.EmitPartial("spent")
		waitForSpeech(t, controller)

		// Old enough, but the last partial just arrived.
		clock.Advance(1500 * time.Millisecond)
		engine.EmitPartial("spent fifty")
		require.Eventually(t, func() bool {
			return controller.Snapshot().Transcript == "spent fifty"
		}, time.Second, time.Millisecond)

		clock.Advance(time.Second)
		clock.Tick()

		assert.Equal(t, PhaseRecording, controller.Snapshot().Phase)
	})
}

// gatedEngine blocks inside Authorized until released, exposing the window
// between the idle check and the transition to Recording.
type gatedEngine struct {
	*ManualEngine
	entered chan struct{}
	release chan struct{}
	mu      sync.Mutex
	starts  int
}

func newGatedEngine() *gatedEngine {
	return &gatedEngine{
		ManualEngine: NewManualEngine(),
		entered:      make(chan struct{}, 2),
		release:      make(chan struct{}),
	}
}

func (g *gatedEngine) Authorized() bool {
	g.entered <- struct{}{}
	<-g.release
	return g.ManualEngine.Authorized()
}

func (g *gatedEngine) Start(events chan<- Event) error {
	g.mu.Lock()
	g.starts++
	g.mu.Unlock()
	return g.ManualEngine.Start(events)
}

func (g *gatedEngine) startCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.starts
}

func TestControllerConcurrentStartsRunOneSession(t *testing.T) {
	engine := newGatedEngine()
	controller := NewController(engine, newFakeClock(), Config{})
	sink := &resultSink{}

	done := make(chan error, 1)
	go func() {
		done <- controller.Start(sink.onFinal, sink.onError)
	}()

	// The first Start is now held inside the permission probe, past the
	// idle check. A second Start here must be a no-op, not a second session.
	<-engine.entered
	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	assert.Zero(t, engine.startCount())

	close(engine.release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, engine.startCount())
	assert.Equal(t, PhaseRecording, controller.Snapshot().Phase)
}

func TestControllerStartAfterFailedStart(t *testing.T) {
	controller, engine, _, sink := newTestController()
	engine.SetAuthorized(false)

	require.ErrorIs(t, controller.Start(sink.onFinal, sink.onError), common.ErrPermissionDenied)

	// A failed probe must release the start path for the next attempt.
	engine.SetAuthorized(true)
	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	assert.Equal(t, PhaseRecording, controller.Snapshot().Phase)
}

func TestControllerStartWhileActiveIsNoOp(t *testing.T) {
	controller, engine, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitPartial("first session")
	waitForSpeech(t, controller)

	// Second start must not reset or error.
	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	state := controller.Snapshot()
	assert.Equal(t, PhaseRecording, state.Phase)
	assert.Equal(t, "first session", state.Transcript)
}

func TestControllerStartFailures(t *testing.T) {
	t.Run("permission denied", func(t *testing.T) {
		controller, engine, _, sink := newTestController()
		engine.SetAuthorized(false)

		err := controller.Start(sink.onFinal, sink.onError)
		require.ErrorIs(t, err, common.ErrPermissionDenied)
		assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
	})

	t.Run("engine unavailable", func(t *testing.T) {
		controller, engine, _, sink := newTestController()
		engine.SetAvailable(false)

		err := controller.Start(sink.onFinal, sink.onError)
		require.ErrorIs(t, err, common.ErrEngineUnavailable)
		assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
	})
}

func TestControllerManualStop(t *testing.T) {
	controller, engine, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitPartial("coffee five dollars")
	waitForSpeech(t, controller)

	controller.Stop()

	require.Eventually(t, func() bool {
		_, count := sink.finals()
		return count == 1
	}, time.Second, time.Millisecond)
	transcript, _ := sink.finals()
	assert.Equal(t, "coffee five dollars", transcript)
	assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
}

func TestControllerCancelForBackground(t *testing.T) {
	controller, engine, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitPartial("spent 50 dirhams")
	waitForSpeech(t, controller)

	controller.CancelForBackground()

	assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)

	// The discarded transcript must never surface.
	time.Sleep(10 * time.Millisecond)
	_, finalCount := sink.finals()
	assert.Zero(t, finalCount)
	_, errCount := sink.errors()
	assert.Zero(t, errCount)
}

func TestControllerCancelWhenIdleIsNoOp(t *testing.T) {
	controller, _, _, _ := newTestController()
	controller.CancelForBackground()
	assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
}

func TestControllerEngineErrorWithPartialIsSuccess(t *testing.T) {
	controller, engine, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitPartial("lunch twelve euros")
	waitForSpeech(t, controller)

	engine.EmitError(errors.New("recognizer gave up"))

	require.Eventually(t, func() bool {
		_, count := sink.finals()
		return count == 1
	}, time.Second, time.Millisecond)
	transcript, _ := sink.finals()
	assert.Equal(t, "lunch twelve euros", transcript)
	assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
	_, errCount := sink.errors()
	assert.Zero(t, errCount)
}

func TestControllerEngineErrorWithoutPartial(t *testing.T) {
	controller, engine, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitError(errors.New("audio session died"))

	waitForPhase(t, controller, PhaseError)
	err, errCount := sink.errors()
	assert.Equal(t, 1, errCount)
	require.ErrorIs(t, err, common.ErrRecognitionFailed)
	_, finalCount := sink.finals()
	assert.Zero(t, finalCount)

	// The error state holds until acknowledged.
	controller.Acknowledge()
	assert.Equal(t, PhaseIdle, controller.Snapshot().Phase)
}

func TestControllerEmptySessionIsError(t *testing.T) {
	controller, _, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	controller.Stop()

	waitForPhase(t, controller, PhaseError)
	assert.Equal(t, "no speech detected", controller.Snapshot().Message)
	err, _ := sink.errors()
	require.ErrorIs(t, err, common.ErrRecognitionFailed)
}

func TestControllerRestartAfterSession(t *testing.T) {
	controller, engine, _, sink := newTestController()

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitPartial("first")
	waitForSpeech(t, controller)
	controller.Stop()
	require.Eventually(t, func() bool {
		_, count := sink.finals()
		return count == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, controller.Start(sink.onFinal, sink.onError))
	engine.EmitPartial("second")
	waitForSpeech(t, controller)
	controller.Stop()

	require.Eventually(t, func() bool {
		_, count := sink.finals()
		return count == 2
	}, time.Second, time.Millisecond)
	transcript, _ := sink.finals()
	assert.Equal(t, "second", transcript)
}

func TestControllerStateStreamDropsOldest(t *testing.T) {
	controller, engine, _, sink := newTestController()
	require.NoError(t, controller.Start(sink.onFinal, sink.onError))

	// Overflow the stream without reading it.
	for i := 0; i < 100; i++ {
		engine.EmitPartial("partial")
	}
	controller.Stop()
	require.Eventually(t, func() bool {
		_, count := sink.finals()
		return count == 1
	}, time.Second, time.Millisecond)

	// Drain; the newest snapshot must still be present.
	var last State
	for {
		select {
		case s := <-controller.States():
			last = s
			continue
		default:
		}
		break
	}
	assert.Equal(t, PhaseIdle, last.Phase)
}
