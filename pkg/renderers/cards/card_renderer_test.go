package cards

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-animalgen/pkg/animal"
)

func defaultClasses() chromeClasses {
	return resolveChromeClasses(nil)
}

func TestBuildCardMarkupFullRecord(t *testing.T) {
	record := animal.Record{
		"name": "Fox",
		"taxonomy": map[string]any{
			"scientific_name": "Vulpes vulpes",
		},
		"locations": []any{"Europe"},
		"characteristics": map[string]any{
			"diet":                "Omnivore",
			"type":                "Mammal",
			"temperament":         "Cunning",
			"average_litter_size": "5",
			"lifespan":            "5 years",
		},
	}

	want := `  <li class="cards__item">
    <div class="card__title">Fox</div>
    <p class="card__subtitle"><em>Vulpes vulpes</em></p>
    <ul class="card__text">
      <li><strong>Diet:</strong> Omnivore</li>
      <li><strong>Type:</strong> Mammal</li>
      <li><strong>Location:</strong> Europe</li>
      <li><strong>Temperament:</strong> Cunning</li>
      <li><strong>Average litter size:</strong> 5</li>
      <li><strong>Lifespan:</strong> 5 years</li>
    </ul>
  </li>
`

	got := buildCardMarkup(record, defaultClasses())
	if got != want {
		t.Fatalf("unexpected markup:\n%s", cmp.Diff(want, got))
	}
}

func TestBuildCardMarkupOmitsAbsentFields(t *testing.T) {
	record := animal.Record{
		"name": "Fox",
		"characteristics": map[string]any{
			"diet": "Omnivore",
			"type": "Mammal",
		},
		"locations": []any{"Europe"},
	}

	got := buildCardMarkup(record, defaultClasses())

	for _, fragment := range []string{
		"<strong>Diet:</strong> Omnivore",
		"<strong>Type:</strong> Mammal",
		"<strong>Location:</strong> Europe",
	} {
		if strings.Count(got, fragment) != 1 {
			t.Fatalf("expected exactly one %q line, got:\n%s", fragment, got)
		}
	}
	for _, label := range []string{"Temperament", "Average litter size", "Lifespan"} {
		if strings.Contains(got, label) {
			t.Fatalf("expected no %s line for absent field, got:\n%s", label, got)
		}
	}
	if strings.Contains(got, "card__subtitle") {
		t.Fatalf("expected no subtitle without scientific name, got:\n%s", got)
	}
}

func TestBuildCardMarkupEmptyNameStillRendersTitle(t *testing.T) {
	got := buildCardMarkup(animal.Record{}, defaultClasses())
	if !strings.Contains(got, `<div class="card__title"></div>`) {
		t.Fatalf("expected empty title line, got:\n%s", got)
	}
}

func TestBuildCardMarkupEmptyStringFieldTreatedAsAbsent(t *testing.T) {
	record := animal.Record{
		"name": "Fox",
		"characteristics": map[string]any{
			"diet": "",
		},
	}
	got := buildCardMarkup(record, defaultClasses())
	if strings.Contains(got, "Diet") {
		t.Fatalf("expected empty-string diet to be omitted, got:\n%s", got)
	}
}

func TestBuildCardMarkupInsertsValuesVerbatim(t *testing.T) {
	record := animal.Record{
		"name": "Fox <wild>",
		"characteristics": map[string]any{
			"diet": "Bugs & berries",
		},
	}
	got := buildCardMarkup(record, defaultClasses())
	if !strings.Contains(got, "Fox <wild>") {
		t.Fatalf("expected verbatim name, got:\n%s", got)
	}
	if !strings.Contains(got, "Bugs & berries") {
		t.Fatalf("expected verbatim value, got:\n%s", got)
	}
}

func TestBuildCardMarkupIndentationIsDepthConsistent(t *testing.T) {
	record := animal.Record{
		"name": "Fox",
		"characteristics": map[string]any{
			"diet": "Omnivore",
		},
	}
	got := buildCardMarkup(record, defaultClasses())

	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		switch {
		case strings.Contains(line, "cards__item") || line == "  </li>":
			if !strings.HasPrefix(line, "  <") {
				t.Fatalf("card root should sit at depth 1: %q", line)
			}
		case strings.Contains(line, "<strong>"):
			if !strings.HasPrefix(line, "      <li>") {
				t.Fatalf("detail lines should sit at depth 3: %q", line)
			}
		default:
			if !strings.HasPrefix(line, "    <") && !strings.HasPrefix(line, "    </") {
				t.Fatalf("body lines should sit at depth 2: %q", line)
			}
		}
	}
}
