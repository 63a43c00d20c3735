package loader

import "fmt"

type State int

const (
	// Idle has no identifier and shows the baseline record.
	Idle State = iota
	// Loading waits for the lookup of the current identifier.
	Loading
	// Ready holds the fetched record, or the fetch-failure fallback.
	Ready
	// TimedOut renders like Ready with the hard fallback record.
	TimedOut
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case TimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Settled reports whether the page can render a record.
func (s State) Settled() bool {
	return s == Ready || s == TimedOut
}

type event int

const (
	eventLoad event = iota
	eventFetched
	eventFetchFailed
	eventDeadline
	eventCleared
	eventAbandoned
)

func (e event) String() string {
	switch e {
	case eventLoad:
		return "load"
	case eventFetched:
		return "fetched"
	case eventFetchFailed:
		return "fetch_failed"
	case eventDeadline:
		return "deadline"
	case eventCleared:
		return "cleared"
	case eventAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// A pair missing from the table is ignored. That is how late fetch results
// and deadlines are dropped once the loader has moved on.
//
//nolint:gochecknoglobals
var transitions = map[State]map[event]State{
	Idle: {
		eventLoad:    Loading,
		eventCleared: Idle,
	},
	Loading: {
		eventLoad:        Loading,
		eventFetched:     Ready,
		eventFetchFailed: Ready,
		eventDeadline:    TimedOut,
		eventCleared:     Idle,
		eventAbandoned:   Idle,
	},
	Ready: {
		eventLoad:    Loading,
		eventCleared: Idle,
	},
	TimedOut: {
		eventLoad:    Loading,
		eventCleared: Idle,
	},
}

func next(s State, e event) (State, bool) {
	to, ok := transitions[s][e]
	return to, ok
}
