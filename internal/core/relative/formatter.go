package relative

import (
	"context"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// Option customizes a Formatter.
type Option func(*Formatter)

// WithClock sets the clock used for now and for the ticker.
func WithClock(clock clockwork.Clock) Option {
	return func(formatter *Formatter) {
		if clock != nil {
			formatter.clock = clock
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(formatter *Formatter) {
		if logger != nil {
			formatter.logger = logger
		}
	}
}

// Formatter keeps the text of tracked elements set to a relative time label.
type Formatter struct {
	mu       sync.Mutex
	config   Config
	elements []Element
	clock    clockwork.Clock
	logger   *log.Logger
	events   []chan Event
	stopCh   chan struct{}
	done     chan struct{}
	running  bool
	paused   bool
}

// WithElements creates a Formatter tracking the given elements.
func WithElements(elements []Element, config Config, opts ...Option) *Formatter {
	formatter := &Formatter{
		config:   Merge(DefaultConfig(), config),
		elements: slices.Clone(elements),
		clock:    clockwork.NewRealClock(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(formatter)
	}
	return formatter
}

// WithConfig creates a Formatter tracking every element of host matching DefaultSelector.
func WithConfig(host Host, config Config, opts ...Option) *Formatter {
	return WithElements(host.QueryAll(DefaultSelector), config, opts...)
}

// Config returns the merged configuration.
func (formatter *Formatter) Config() Config {
	config := formatter.config
	config.Units = slices.Clone(config.Units)
	return config
}

// Elements returns the tracked elements in render order.
func (formatter *Formatter) Elements() []Element {
	return slices.Clone(formatter.elements)
}

// Label computes the text for an element without writing it.
func (formatter *Formatter) Label(element Element) (string, error) {
	eventTime, err := formatter.config.Date(element)
	if err != nil {
		if errors.Is(err, ErrInvalidTimestamp) {
			formatter.logger.Debug("unusable timestamp", "error", err)
			return formatter.config.Format(0, ""), nil
		}
		return "", errors.Wrap(err, "read element date")
	}
	magnitude, unit := Compute(formatter.clock.Now().Sub(eventTime), formatter.config.Units)
	return formatter.config.Format(magnitude, unit), nil
}

// Render writes the relative time label of a single element.
func (formatter *Formatter) Render(element Element) error {
	text, err := formatter.Label(element)
	if err != nil {
		return err
	}
	element.SetText(text)
	return nil
}

// RenderAll renders every tracked element in order. The first error stops the pass.
func (formatter *Formatter) RenderAll() error {
	for index, element := range formatter.elements {
		if err := formatter.Render(element); err != nil {
			return errors.Wrapf(err, "render element %d", index)
		}
	}
	return nil
}

// Subscribe registers a new observer channel.
func (formatter *Formatter) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	formatter.mu.Lock()
	formatter.events = append(formatter.events, ch)
	formatter.mu.Unlock()
	return ch
}

// Start renders all elements once and then again every interval until Stop
// is called or ctx is done. A Start racing a Stop waits for the old loop to exit.
func (formatter *Formatter) Start(ctx context.Context) {
	formatter.mu.Lock()
	for formatter.running {
		if formatter.stopCh != nil {
			formatter.mu.Unlock()
			return
		}
		done := formatter.done
		formatter.mu.Unlock()
		<-done
		formatter.mu.Lock()
	}
	formatter.running = true
	formatter.paused = false
	formatter.stopCh = make(chan struct{})
	formatter.done = make(chan struct{})
	stopCh, done := formatter.stopCh, formatter.done
	formatter.mu.Unlock()

	formatter.logger.Debug("starting relative time formatter",
		"elements", len(formatter.elements),
		"interval", formatter.config.Interval)
	formatter.emit(Event{
		Type:  EventStateChange,
		State: StateRunning,
		At:    formatter.clock.Now(),
	})
	formatter.tick()

	ticker := formatter.clock.NewTicker(formatter.config.Interval)
	go formatter.run(ctx, ticker, stopCh, done)
}

// Stop terminates the ticking loop and closes observers.
func (formatter *Formatter) Stop() {
	formatter.mu.Lock()
	if !formatter.running || formatter.stopCh == nil {
		formatter.mu.Unlock()
		return
	}
	close(formatter.stopCh)
	formatter.stopCh = nil
	done := formatter.done
	formatter.mu.Unlock()

	<-done
}

// Pause suspends rendering on ticks.
func (formatter *Formatter) Pause() {
	formatter.setPaused(true, StatePaused)
}

// Resume restarts rendering on ticks.
func (formatter *Formatter) Resume() {
	formatter.setPaused(false, StateRunning)
}

func (formatter *Formatter) isRunning() bool {
	formatter.mu.Lock()
	defer formatter.mu.Unlock()
	return formatter.running
}

func (formatter *Formatter) setPaused(paused bool, state State) {
	formatter.mu.Lock()
	if !formatter.running || formatter.paused == paused {
		formatter.mu.Unlock()
		return
	}
	formatter.paused = paused
	formatter.mu.Unlock()

	formatter.emit(Event{
		Type:  EventStateChange,
		State: state,
		At:    formatter.clock.Now(),
	})
}

func (formatter *Formatter) run(ctx context.Context, ticker clockwork.Ticker, stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer formatter.shutdown()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.Chan():
			formatter.mu.Lock()
			paused := formatter.paused
			formatter.mu.Unlock()
			if !paused {
				formatter.tick()
			}
		}
	}
}

func (formatter *Formatter) tick() {
	now := formatter.clock.Now()
	if err := formatter.RenderAll(); err != nil {
		formatter.logger.Error("render pass aborted", "error", err)
		formatter.emit(Event{
			Type:    EventRenderError,
			State:   StateRunning,
			Message: err.Error(),
			At:      now,
		})
		return
	}
	formatter.emit(Event{
		Type:     EventRendered,
		State:    StateRunning,
		Rendered: len(formatter.elements),
		At:       now,
	})
}

func (formatter *Formatter) shutdown() {
	formatter.mu.Lock()
	formatter.running = false
	formatter.paused = false
	events := formatter.events
	formatter.events = nil
	formatter.mu.Unlock()

	formatter.logger.Debug("relative time formatter stopped")
	stopped := Event{Type: EventStateChange, State: StateStopped, At: formatter.clock.Now()}
	for _, ch := range events {
		select {
		case ch <- stopped:
		default:
		}
		close(ch)
	}
}

func (formatter *Formatter) emit(event Event) {
	formatter.mu.Lock()
	defer formatter.mu.Unlock()

	for _, ch := range formatter.events {
		select {
		case ch <- event:
		default:
		}
	}
}
