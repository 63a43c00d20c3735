package loader

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// DefaultAddressParam is the query parameter the page keeps the deal key in.
const DefaultAddressParam = "nid"

type HistoryKind string

const (
	HistoryPush    HistoryKind = "push"
	HistoryReplace HistoryKind = "replace"
)

type HistoryEntry struct {
	Kind HistoryKind
	URL  string
}

// URLAddress is an in-memory address bar.
type URLAddress struct {
	mu      sync.Mutex
	param   string
	current *url.URL
	history []HistoryEntry
}

func NewURLAddress(rawURL, param string) (*URLAddress, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	return &URLAddress{
		param:   param,
		current: u,
		history: []HistoryEntry{{Kind: HistoryPush, URL: u.String()}},
	}, nil
}

// Identifier returns the trimmed identifier, "" when absent.
func (a *URLAddress) Identifier() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return strings.TrimSpace(a.current.Query().Get(a.param))
}

// ReplaceIdentifier rewrites the identifier in place, keeping every other
// parameter. The history gets a replace entry, not a new page.
func (a *URLAddress) ReplaceIdentifier(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	u := *a.current
	query := u.Query()
	query.Set(a.param, id)
	u.RawQuery = query.Encode()

	a.current = &u
	a.history[len(a.history)-1] = HistoryEntry{Kind: HistoryReplace, URL: u.String()}
}

// Navigate moves to another address as a new history entry.
func (a *URLAddress) Navigate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("url.Parse: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.current = a.current.ResolveReference(u)
	a.history = append(a.history, HistoryEntry{Kind: HistoryPush, URL: a.current.String()})

	return nil
}

func (a *URLAddress) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current.String()
}

func (a *URLAddress) History() []HistoryEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]HistoryEntry(nil), a.history...)
}
