package testsupport

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/tui"
)

// ErrScriptExhausted reports that a scripted driver ran out of answers. Tests
// use it to terminate retry loops deterministically.
var ErrScriptExhausted = errors.New("testsupport: scripted answers exhausted")

// ScriptedPrompts implements tui.PromptDriver from fixed answer sequences so
// interactive flows can run synchronously under test.
type ScriptedPrompts struct {
	Inputs     []string
	Selections []string
	Messages   []string

	inputIndex  int
	selectIndex int
}

var _ tui.PromptDriver = (*ScriptedPrompts)(nil)

func (s *ScriptedPrompts) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if s.inputIndex >= len(s.Inputs) {
		return "", ErrScriptExhausted
	}
	answer := s.Inputs[s.inputIndex]
	s.inputIndex++
	return answer, nil
}

func (s *ScriptedPrompts) Select(_ context.Context, cfg tui.SelectConfig) (string, error) {
	if s.selectIndex >= len(s.Selections) {
		return "", ErrScriptExhausted
	}
	answer := s.Selections[s.selectIndex]
	s.selectIndex++
	return answer, nil
}

func (s *ScriptedPrompts) Info(_ context.Context, msg string) error {
	s.Messages = append(s.Messages, msg)
	return nil
}

// MemorySink captures persisted pages in memory so flows can be asserted on
// without touching the filesystem.
type MemorySink struct {
	Pages map[string][]byte
}

func (s *MemorySink) Write(_ context.Context, name string, data []byte) error {
	if s.Pages == nil {
		s.Pages = make(map[string][]byte)
	}
	s.Pages[name] = data
	return nil
}

// StaticRemote implements the remote source contract from a fixed table of
// query → records answers; unlisted queries yield zero results.
type StaticRemote struct {
	Results map[string][]animal.Record
}

func (s *StaticRemote) FetchOrEmpty(_ context.Context, query string) []animal.Record {
	if s == nil {
		return nil
	}
	return s.Results[query]
}

// LoadRecords reads a JSON fixture into a record slice, failing the test on
// any error.
func LoadRecords(t *testing.T, path string) []animal.Record {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	records, err := animal.Decode(data)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return records
}

// Zoo returns a small in-memory dataset covering the optional-field
// permutations exercised across the test suites.
func Zoo() []animal.Record {
	return []animal.Record{
		{
			"name": "Fox",
			"taxonomy": map[string]any{
				"scientific_name": "Vulpes vulpes",
			},
			"locations": []any{"Europe", "Asia"},
			"characteristics": map[string]any{
				"diet":      "Omnivore",
				"type":      "Mammal",
				"skin_type": "Fur",
			},
		},
		{
			"name": "Gecko",
			"characteristics": map[string]any{
				"diet":      "Insectivore",
				"skin_type": "Scales",
				"lifespan":  "5 years",
			},
		},
		{
			"name": "Jellyfish",
		},
	}
}
