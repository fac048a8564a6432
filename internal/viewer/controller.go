// Package viewer implements the dock status viewer: a controller that owns
// the user's session, evaluates the matching dock record into a display frame
// and keeps the display fresh with a single polling loop.
package viewer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jamesprial/dock-status/internal/dock"
	"github.com/jamesprial/dock-status/internal/metrics"
	"github.com/jamesprial/dock-status/internal/render"
)

const defaultPollInterval = time.Second

// Outcome is the result of one fetch-match-render evaluation.
type Outcome struct {
	State State `json:"state"`
	Frame Frame `json:"frame"`
}

// Snapshot is a consistent copy of the session and the display region.
type Snapshot struct {
	State       State    `json:"state"`
	LastOutcome State    `json:"last_outcome,omitempty"`
	Identifier  string   `json:"identifier,omitempty"`
	Suggestions []string `json:"suggestions"`
	Polling     bool     `json:"polling"`
	Frame       Frame    `json:"frame"`
}

// Viewer is the behaviour shared by the popup page and the MCP tools.
type Viewer interface {
	Load(ctx context.Context) []string
	Fetch(ctx context.Context, input string) Outcome
	Snapshot() Snapshot
	Stop()
}

// Compile-time interface check.
var _ Viewer = (*Controller)(nil)

// session is the per-user viewer state.
type session struct {
	identifier  string
	state       State
	lastOutcome State
	suggestions []string
}

// Controller drives the viewer state machine. It is safe for concurrent use.
type Controller struct {
	fetcher  dock.StatusFetcher
	display  *Display
	logger   *zap.Logger
	metrics  *metrics.Metrics
	interval time.Duration

	mu      sync.Mutex
	session session
	// gen increases with every Fetch; work started under an older generation
	// must not touch the display.
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithPollInterval sets the polling period. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithDisplay sets the display region written by the controller.
func WithDisplay(d *Display) Option {
	return func(c *Controller) {
		if d != nil {
			c.display = d
		}
	}
}

// NewController returns an idle Controller reading from fetcher.
func NewController(fetcher dock.StatusFetcher, opts ...Option) *Controller {
	if fetcher == nil {
		panic("status fetcher must not be nil")
	}
	c := &Controller{
		fetcher:  fetcher,
		display:  NewDisplay(),
		logger:   zap.NewNop(),
		interval: defaultPollInterval,
		session:  session{state: StateIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Display returns the region the controller writes to.
func (c *Controller) Display() *Display {
	return c.display
}

// PollInterval returns the polling period.
func (c *Controller) PollInterval() time.Duration {
	return c.interval
}

// Load fetches the status document and stores every known identifier as the
// suggestion list, which is returned. On failure nil is returned; before the
// first Fetch the display then shows the connection error.
func (c *Controller) Load(ctx context.Context) []string {
	doc, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.session.state.preFetch() {
			c.session.state = StateConnectionError
			c.display.Show(warningFrame(MsgConnectionError))
		}
		return nil
	}

	ids := dock.Identifiers(doc)
	c.session.suggestions = ids
	if c.session.state.preFetch() {
		if c.session.state == StateConnectionError {
			c.display.Show(Frame{})
		}
		c.session.state = StateSuggestionsLoaded
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Fetch selects the identifier typed by the user, evaluates it once and, when
// a table could be rendered, starts polling. Any running polling loop is
// cancelled first, so at most one loop is active.
func (c *Controller) Fetch(ctx context.Context, input string) Outcome {
	id := dock.Normalize(input)

	c.mu.Lock()
	c.stopLocked()
	c.gen++
	gen := c.gen
	c.session.identifier = id
	c.session.state = StateLoading
	c.session.lastOutcome = ""
	c.display.Show(loadingFrame())
	c.mu.Unlock()

	out := c.evaluate(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// A newer Fetch owns the display now.
		return out
	}

	c.session.state = out.State
	c.session.lastOutcome = out.State
	c.display.Show(out.Frame)
	out.Frame = c.display.Current()

	if out.State == StateDisplaying {
		c.startLocked(gen, id)
		c.session.state = StatePolling
	}
	return out
}

// Stop cancels the polling loop, if any, and waits for it to exit. The display
// keeps its last frame.
func (c *Controller) Stop() {
	c.mu.Lock()
	done := c.done
	c.stopLocked()
	if c.session.state == StatePolling {
		c.session.state = c.session.lastOutcome
	}
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Snapshot returns the current session and display content.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:       c.session.state,
		LastOutcome: c.session.lastOutcome,
		Identifier:  c.session.identifier,
		Suggestions: append([]string{}, c.session.suggestions...),
		Polling:     c.cancel != nil,
		Frame:       c.display.Current(),
	}
}

func (c *Controller) stopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.done = nil
	}
}

func (c *Controller) startLocked(gen uint64, id string) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	c.metrics.LoopStarted()
	c.logger.Debug("polling started", zap.String("identifier", id), zap.Duration("interval", c.interval))
	go c.poll(ctx, gen, id, done)
}

func (c *Controller) poll(ctx context.Context, gen uint64, id string, done chan struct{}) {
	defer close(done)
	defer c.metrics.LoopStopped()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		out := c.evaluate(ctx, id)

		c.mu.Lock()
		if ctx.Err() != nil || gen != c.gen {
			c.mu.Unlock()
			return
		}
		c.session.lastOutcome = out.State
		c.display.Show(out.Frame)
		c.mu.Unlock()
	}
}

func (c *Controller) evaluate(ctx context.Context, id string) Outcome {
	out := c.outcome(ctx, id)
	c.metrics.Outcome(string(out.State))
	return out
}

func (c *Controller) outcome(ctx context.Context, id string) Outcome {
	doc, err := c.fetch(ctx)
	if err != nil {
		return Outcome{State: StateErrorNoData, Frame: warningFrame(MsgFetchError)}
	}

	rec, err := dock.Match(doc, id)
	if err != nil {
		return Outcome{State: StateErrorNotFound, Frame: warningFrame(MsgNotFound)}
	}

	if !rec.HasBattery() {
		return Outcome{State: StateErrorNoBattery, Frame: warningFrame(MsgNoBattery)}
	}

	table, err := render.Build(id, rec)
	if err != nil {
		c.logger.Warn("dock record rejected", zap.String("identifier", id), zap.Error(err))
		return Outcome{State: StateErrorDataFormat, Frame: warningFrame(MsgDataFormat)}
	}
	return Outcome{State: StateDisplaying, Frame: tableFrame(table)}
}

// fetch wraps the fetcher with metrics and failure logging. Failures caused by
// the caller cancelling ctx are not logged.
func (c *Controller) fetch(ctx context.Context) (*dock.Document, error) {
	start := time.Now()
	doc, err := c.fetcher.Status(ctx)
	if err == nil && doc == nil {
		err = dock.ErrUnavailable
	}
	c.metrics.ObserveFetch(start, err)

	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		c.logger.Warn("fetch dock status failed", zap.Error(err))
	}
	return doc, err
}
