package cards

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/page"
	"github.com/goliatone/go-animalgen/pkg/render"
)

func TestRendererPreservesRecordOrder(t *testing.T) {
	renderer := New()
	model := page.Model{
		Records: []animal.Record{
			{"name": "Aardvark"},
			{"name": "Zebra"},
		},
	}

	output, err := renderer.Render(context.Background(), model, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	first := strings.Index(html, "Aardvark")
	second := strings.Index(html, "Zebra")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected records in input order, got:\n%s", html)
	}
	if got := strings.Count(html, `<li class="cards__item">`); got != 2 {
		t.Fatalf("expected 2 card fragments, got %d:\n%s", got, html)
	}
}

func TestRendererFilterBanner(t *testing.T) {
	renderer := New()
	model := page.Model{
		Banner:  page.FilterBanner("Fur"),
		Records: []animal.Record{{"name": "Fox"}},
	}

	output, err := renderer.Render(context.Background(), model, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<h2 class="cards__heading">Filtered by: Fur</h2>`) {
		t.Fatalf("expected filter banner, got:\n%s", html)
	}
	if banner, card := strings.Index(html, "cards__heading"), strings.Index(html, "cards__item"); banner > card {
		t.Fatalf("expected banner ahead of cards, got:\n%s", html)
	}
}

func TestRendererResultsBanner(t *testing.T) {
	renderer := New()
	model := page.Model{
		Banner:  page.ResultsBanner("fox", "Fur"),
		Records: []animal.Record{{"name": "Fox"}},
	}

	output, err := renderer.Render(context.Background(), model, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), `Results for "fox", filtered by: Fur`) {
		t.Fatalf("expected results banner naming query and key, got:\n%s", output)
	}
}

func TestRendererErrorBannerWithoutCards(t *testing.T) {
	renderer := New()
	model := page.Model{Banner: page.ErrorBanner("dodo")}

	output, err := renderer.Render(context.Background(), model, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<h2 class="cards__error">The animal "dodo" doesn't exist.</h2>`) {
		t.Fatalf("expected error banner naming the query, got:\n%s", html)
	}
	if strings.Contains(html, "cards__item") {
		t.Fatalf("expected zero card fragments, got:\n%s", html)
	}
}

func TestRendererChromeClassOverrides(t *testing.T) {
	renderer := New()
	model := page.Model{Records: []animal.Record{{"name": "Fox"}}}
	options := render.RenderOptions{
		ChromeClasses: map[string]string{
			SlotItem:  "zoo__card",
			SlotTitle: "zoo__name",
		},
	}

	output, err := renderer.Render(context.Background(), model, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<li class="zoo__card">`) {
		t.Fatalf("expected item class override, got:\n%s", html)
	}
	if !strings.Contains(html, `<div class="zoo__name">Fox</div>`) {
		t.Fatalf("expected title class override, got:\n%s", html)
	}
	if !strings.Contains(html, `class="card__text"`) {
		t.Fatalf("expected untouched slots to keep defaults, got:\n%s", html)
	}
}

func TestRendererMetadata(t *testing.T) {
	renderer := New()
	if renderer.Name() != RendererName {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRendererHonoursCancelledContext(t *testing.T) {
	renderer := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, page.Model{}, render.RenderOptions{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
