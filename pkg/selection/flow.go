package selection

import (
	"errors"
	"sort"
)

// ErrNoChoices reports that no selection is possible because the key set is
// empty. Callers decide whether that is terminal (local flow) or a cue to
// start over with fresh input (remote flow).
var ErrNoChoices = errors.New("selection: no keys available")

// State enumerates the phases of the interactive selection loop. Modelling
// the loop as an explicit machine keeps it drivable synchronously by a test
// harness supplying a scripted sequence of inputs.
type State string

const (
	// StateAwaitingInput means the flow is ready to accept a candidate key.
	StateAwaitingInput State = "awaiting-input"
	// StateResolved means a candidate matched and the flow is finished.
	StateResolved State = "resolved"
)

// Flow validates externally-supplied key strings against a fixed set of
// available bucket keys. Resolution succeeds only on exact match; anything
// else transitions back to awaiting-input so the caller re-prompts instead of
// silently defaulting.
type Flow struct {
	keys     []string
	keySet   map[string]struct{}
	state    State
	resolved string
	attempts int
}

// NewFlow builds a flow over the available keys, presented sorted
// lexicographically ascending. An empty key set yields ErrNoChoices.
func NewFlow(keys []string) (*Flow, error) {
	if len(keys) == 0 {
		return nil, ErrNoChoices
	}

	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	keySet := make(map[string]struct{}, len(sorted))
	for _, key := range sorted {
		keySet[key] = struct{}{}
	}

	return &Flow{
		keys:   sorted,
		keySet: keySet,
		state:  StateAwaitingInput,
	}, nil
}

// Keys returns the available keys in presentation order.
func (f *Flow) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// State returns the current machine state.
func (f *Flow) State() State {
	return f.state
}

// Attempts returns how many candidates have been offered so far.
func (f *Flow) Attempts() int {
	return f.attempts
}

// Offer validates one candidate key and returns the resulting state. A
// resolved flow stays resolved; further candidates are ignored.
func (f *Flow) Offer(candidate string) State {
	if f.state == StateResolved {
		return f.state
	}

	f.attempts++
	if _, ok := f.keySet[candidate]; ok {
		f.resolved = candidate
		f.state = StateResolved
	} else {
		f.state = StateAwaitingInput
	}
	return f.state
}

// Resolved returns the matched key once the flow has resolved.
func (f *Flow) Resolved() (string, bool) {
	if f.state != StateResolved {
		return "", false
	}
	return f.resolved, true
}
