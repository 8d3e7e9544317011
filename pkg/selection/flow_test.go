package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-animalgen/pkg/testsupport"
)

func TestNewFlowSortsKeys(t *testing.T) {
	flow, err := NewFlow([]string{"Scales", "Fur", "Unknown"})
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	want := []string{"Fur", "Scales", "Unknown"}
	if got := flow.Keys(); !cmp.Equal(got, want) {
		t.Fatalf("unexpected presentation order: %s", cmp.Diff(want, got))
	}
	if flow.State() != StateAwaitingInput {
		t.Fatalf("expected awaiting-input start state, got %q", flow.State())
	}
}

func TestNewFlowEmptyKeySet(t *testing.T) {
	if _, err := NewFlow(nil); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestOfferExactMatchResolves(t *testing.T) {
	flow, err := NewFlow([]string{"Fur", "Scales"})
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	if state := flow.Offer("Fur"); state != StateResolved {
		t.Fatalf("expected resolved state, got %q", state)
	}
	resolved, ok := flow.Resolved()
	if !ok || resolved != "Fur" {
		t.Fatalf("expected resolution to Fur, got %q (ok=%v)", resolved, ok)
	}
}

func TestOfferMismatchRetries(t *testing.T) {
	flow, err := NewFlow([]string{"Fur"})
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	for _, candidate := range []string{"fur", " Fur", "Feathers"} {
		if state := flow.Offer(candidate); state != StateAwaitingInput {
			t.Fatalf("expected %q to be rejected, got state %q", candidate, state)
		}
	}
	if _, ok := flow.Resolved(); ok {
		t.Fatal("expected unresolved flow after mismatches")
	}
	if flow.Attempts() != 3 {
		t.Fatalf("expected 3 attempts, got %d", flow.Attempts())
	}

	if state := flow.Offer("Fur"); state != StateResolved {
		t.Fatalf("expected eventual resolution, got %q", state)
	}
}

func TestRunRetriesUntilValidAnswer(t *testing.T) {
	driver := &testsupport.ScriptedPrompts{
		Selections: []string{"Feathers", "Fur"},
	}

	key, err := Run(context.Background(), driver, "Choose a skin type:", []string{"Scales", "Fur"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if key != "Fur" {
		t.Fatalf("expected Fur, got %q", key)
	}
	if len(driver.Messages) != 1 {
		t.Fatalf("expected one retry notice, got %v", driver.Messages)
	}
}

func TestRunEmptyKeySet(t *testing.T) {
	driver := &testsupport.ScriptedPrompts{}
	if _, err := Run(context.Background(), driver, "Choose:", nil); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestRunSurfacesDriverErrors(t *testing.T) {
	driver := &testsupport.ScriptedPrompts{}
	if _, err := Run(context.Background(), driver, "Choose:", []string{"Fur"}); !errors.Is(err, testsupport.ErrScriptExhausted) {
		t.Fatalf("expected exhausted script error, got %v", err)
	}
}
