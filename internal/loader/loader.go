package loader

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/service/landing"
	"offer_landing/internal/domain/value"
	"offer_landing/pkg/logx"
)

const (
	DefaultDeadline = 15 * time.Second

	pageName = "home"
	formName = "deal_lookup"

	// Shorter visits are not reported.
	minTimeOnPage = 10 * time.Second
)

type Fetcher interface {
	Fetch(ctx context.Context, id string) (entity.DealRecord, error)
}

type Address interface {
	Identifier() string
	ReplaceIdentifier(id string)
}

type Sink interface {
	Notify(ctx context.Context, event entity.AnalyticsEvent)
}

type nopSink struct{}

func (nopSink) Notify(context.Context, entity.AnalyticsEvent) {}

type Option func(*Loader)

// WithDeadline bounds how long the page waits for a lookup.
func WithDeadline(d time.Duration) Option {
	return func(l *Loader) {
		l.deadline = d
	}
}

func WithSink(sink Sink) Option {
	return func(l *Loader) {
		l.sink = sink
	}
}

// WithSessionID tags every emitted event.
func WithSessionID(id string) Option {
	return func(l *Loader) {
		l.sessionID = id
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

type Snapshot struct {
	State      State
	Identifier string
	// Record is the held record. Zero while HasRecord is false.
	Record    entity.DealRecord
	HasRecord bool
	// Display is what the page renders right now.
	Display entity.DealRecord
}

// Loader drives the landing page through Idle, Loading, Ready and TimedOut
// for one page session. Only the newest load may change the state: every
// load gets a generation number, and results of older generations are
// dropped.
type Loader struct {
	fetcher   Fetcher
	address   Address
	sink      Sink
	deadline  time.Duration
	sessionID string
	now       func() time.Time

	mu         sync.Mutex
	state      State
	identifier string
	record     entity.DealRecord
	hasRecord  bool
	generation uint64
	cancel     context.CancelFunc
	timer      *time.Timer
	settled    chan struct{}
	mountedAt  time.Time
	scrolled   map[int]bool
}

// New creates an Idle loader for one page session.
func New(fetcher Fetcher, address Address, opts ...Option) *Loader {
	settled := make(chan struct{})
	close(settled)

	l := &Loader{
		fetcher:  fetcher,
		address:  address,
		sink:     nopSink{},
		deadline: DefaultDeadline,
		now:      time.Now,
		state:    Idle,
		settled:  settled,
		scrolled: make(map[int]bool),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Mount reports the page view and starts loading the identifier found in the
// address, unless a record is already held.
func (l *Loader) Mount(ctx context.Context) {
	l.notify(ctx, entity.PageViewEvent(pageName))

	l.mu.Lock()
	defer l.mu.Unlock()

	l.mountedAt = l.now()

	id := strings.TrimSpace(l.address.Identifier())
	if id == "" || l.hasRecord {
		return
	}

	l.startLocked(ctx, id, false)
}

// Submit loads an identifier typed by the visitor. Blank input changes
// nothing.
func (l *Loader) Submit(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		l.notify(ctx, entity.FormErrorEvent(formName, "empty"))
		return
	}

	l.notify(ctx, entity.FormCompleteEvent(formName))

	l.mu.Lock()
	defer l.mu.Unlock()

	l.startLocked(ctx, id, true)
}

// AddressChanged reacts to back/forward navigation.
func (l *Loader) AddressChanged(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := strings.TrimSpace(l.address.Identifier())

	switch {
	case id != "" && id != l.identifier:
		l.startLocked(ctx, id, false)
	case id == "" && l.identifier != "":
		l.clearLocked(ctx)
	}
}

func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Snapshot{
		State:      l.state,
		Identifier: l.identifier,
		Record:     l.record,
		HasRecord:  l.hasRecord,
		Display:    entity.NoIdentifierBaseline,
	}

	if l.hasRecord {
		s.Display = l.record
	}

	return s
}

// Wait blocks while the loader is Loading.
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.Lock()
	settled := l.settled
	l.mu.Unlock()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

// ClickCTA reports the click and returns the chat link for the action. ok is
// false when no advisor can be contacted.
func (l *Loader) ClickCTA(ctx context.Context, action value.ContactAction) (string, bool) {
	l.notify(ctx, entity.CTAClickEvent(action.CTAName(), action.Location()))
	l.notify(ctx, entity.ContactClickEvent("whatsapp"))

	display := l.Snapshot().Display

	return landing.ContactURL(landing.CTAHandle(display, action), action)
}

// ScrollTo reports every milestone up to percent that was not reported yet.
func (l *Loader) ScrollTo(ctx context.Context, percent int) {
	var reached []int

	l.mu.Lock()
	for _, m := range entity.ScrollMilestones {
		if percent >= m && !l.scrolled[m] {
			l.scrolled[m] = true
			reached = append(reached, m)
		}
	}
	l.mu.Unlock()

	for _, m := range reached {
		l.notify(ctx, entity.ScrollDepthEvent(m))
	}
}

// Leave ends the page session and abandons any pending lookup. A loader left
// while Loading goes back to Idle. Visits longer than ten seconds are reported
// with their duration.
func (l *Loader) Leave(ctx context.Context) {
	l.mu.Lock()
	spent := l.now().Sub(l.mountedAt)
	mounted := !l.mountedAt.IsZero()
	l.stopLocked()
	l.generation++

	if l.state == Loading && l.applyLocked(ctx, eventAbandoned) {
		l.identifier = ""
		l.record = entity.DealRecord{}
		l.hasRecord = false
	}

	l.settleLocked()
	l.mu.Unlock()

	if mounted && spent > minTimeOnPage {
		l.notify(ctx, entity.TimeOnPageEvent(int(spent.Round(time.Second).Seconds())))
	}
}

func (l *Loader) startLocked(ctx context.Context, id string, fromSubmit bool) {
	if !l.applyLocked(ctx, eventLoad) {
		return
	}

	l.stopLocked()

	l.generation++
	gen := l.generation
	l.identifier = id

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	if l.isSettledLocked() {
		l.settled = make(chan struct{})
	}

	l.timer = time.AfterFunc(l.deadline, func() {
		l.onDeadline(ctx, gen)
	})

	go l.fetch(loadCtx, cancel, gen, id, fromSubmit)
}

func (l *Loader) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64, id string, fromSubmit bool) {
	defer cancel()

	record, err := l.fetcher.Fetch(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()

	log := logger(ctx).With(slog.String(logx.FieldDealKey, id))

	if gen != l.generation {
		log.Debug("stale lookup result dropped")
		return
	}

	ev := eventFetched
	if err != nil {
		log.Warn("lookup failed, using fallback record", logx.Error(err))

		ev = eventFetchFailed
		record = entity.FetchFailureFallback
	}

	if !l.applyLocked(ctx, ev) {
		log.Debug("late lookup result dropped")
		return
	}

	l.record = record
	l.hasRecord = true
	l.settleLocked()

	if fromSubmit && err == nil {
		l.address.ReplaceIdentifier(id)
	}
}

func (l *Loader) onDeadline(ctx context.Context, gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation || !l.applyLocked(ctx, eventDeadline) {
		return
	}

	logger(ctx).Warn("lookup deadline exceeded, using fallback record", slog.String(logx.FieldDealKey, l.identifier))

	// The request keeps running; its result is dropped by the table.
	l.record = entity.HardFallback
	l.hasRecord = true
	l.settleLocked()
}

func (l *Loader) clearLocked(ctx context.Context) {
	if !l.applyLocked(ctx, eventCleared) {
		return
	}

	l.stopLocked()
	l.generation++
	l.identifier = ""
	l.record = entity.DealRecord{}
	l.hasRecord = false
	l.settleLocked()
}

func (l *Loader) applyLocked(ctx context.Context, ev event) bool {
	to, ok := next(l.state, ev)
	if !ok {
		return false
	}

	if to != l.state {
		logger(ctx).Debug(
			"loader transition",
			slog.String("from", l.state.String()),
			slog.String(logx.FieldLoaderState, to.String()),
			slog.String("event", ev.String()),
		)
	}

	l.state = to

	return true
}

// stopLocked cancels the in-flight request and its deadline.
func (l *Loader) stopLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *Loader) settleLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}

	if !l.isSettledLocked() {
		close(l.settled)
	}
}

func (l *Loader) isSettledLocked() bool {
	select {
	case <-l.settled:
		return true
	default:
		return false
	}
}

func (l *Loader) notify(ctx context.Context, event entity.AnalyticsEvent) {
	event.SessionID = l.sessionID
	l.sink.Notify(ctx, event)
}
