package gemini

import (
	"context"
	"sync"
)

// Fake is a scripted Generator for tests and dry runs.
type Fake struct {
	mu      sync.Mutex
	calls   [][]Part
	respond func(call int, parts []Part) (string, error)
}

// NewFake answers every request with fn, called with the 1-based call number.
func NewFake(fn func(call int, parts []Part) (string, error)) *Fake {
	return &Fake{respond: fn}
}

// NewFakeText always answers with text.
func NewFakeText(text string) *Fake {
	return NewFake(func(int, []Part) (string, error) { return text, nil })
}

func (f *Fake) Generate(_ context.Context, parts ...Part) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, parts)
	n := len(f.calls)
	f.mu.Unlock()

	return f.respond(n, parts)
}

// CallCount returns how many requests were made.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// LastCall returns the parts of the most recent request.
func (f *Fake) LastCall() []Part {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}
