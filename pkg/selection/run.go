package selection

import (
	"context"
	"fmt"

	"github.com/goliatone/go-animalgen/pkg/tui"
)

// Run drives a Flow to resolution against a prompt driver: present the
// sorted keys, validate the answer, re-prompt on mismatch. The loop is
// bounded only by a valid answer or a driver error.
func Run(ctx context.Context, driver tui.PromptDriver, message string, keys []string) (string, error) {
	if driver == nil {
		return "", fmt.Errorf("selection: prompt driver is required")
	}

	flow, err := NewFlow(keys)
	if err != nil {
		return "", err
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := driver.Select(ctx, tui.SelectConfig{
			Message: message,
			Options: flow.Keys(),
		})
		if err != nil {
			return "", fmt.Errorf("selection: prompt: %w", err)
		}

		if flow.Offer(candidate) == StateResolved {
			resolved, _ := flow.Resolved()
			return resolved, nil
		}
		_ = driver.Info(ctx, fmt.Sprintf("%q is not one of the available options, try again.", candidate))
	}
}
