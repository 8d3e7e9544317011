package cards

import (
	"strings"

	"github.com/goliatone/go-animalgen/pkg/animal"
)

// Indentation is structural, not cosmetic: consumers diff generated pages, so
// every nesting level is two spaces per depth. The card root sits at depth 1,
// its body at depth 2, and detail list items at depth 3.
const (
	indentCard   = "  "
	indentBody   = "    "
	indentDetail = "      "
)

// detailLine pairs a display label with its extractor. Order is part of the
// contract: Location is interleaved between Type and Temperament rather than
// grouped with the other characteristics lookups.
type detailLine struct {
	label   string
	extract func(animal.Record) string
}

var detailLines = []detailLine{
	{label: "Diet", extract: func(r animal.Record) string { return r.Characteristic(animal.CharacteristicDiet) }},
	{label: "Type", extract: func(r animal.Record) string { return r.Characteristic(animal.CharacteristicType) }},
	{label: "Location", extract: animal.Record.Location},
	{label: "Temperament", extract: func(r animal.Record) string { return r.Characteristic(animal.CharacteristicTemperament) }},
	{label: "Average litter size", extract: func(r animal.Record) string { return r.Characteristic(animal.CharacteristicLitterSize) }},
	{label: "Lifespan", extract: func(r animal.Record) string { return r.Characteristic(animal.CharacteristicLifespan) }},
}

// buildCardMarkup renders one record into a self-contained card fragment.
// Absent fields produce no line at all; values are inserted verbatim, no
// escaping.
func buildCardMarkup(record animal.Record, classes chromeClasses) string {
	var builder strings.Builder
	builder.Grow(256)

	builder.WriteString(indentCard)
	builder.WriteString(`<li class="`)
	builder.WriteString(classes.item)
	builder.WriteString("\">\n")

	builder.WriteString(indentBody)
	builder.WriteString(`<div class="`)
	builder.WriteString(classes.title)
	builder.WriteString(`">`)
	builder.WriteString(record.Name())
	builder.WriteString("</div>\n")

	if scientific := record.ScientificName(); scientific != "" {
		builder.WriteString(indentBody)
		builder.WriteString(`<p class="`)
		builder.WriteString(classes.subtitle)
		builder.WriteString(`"><em>`)
		builder.WriteString(scientific)
		builder.WriteString("</em></p>\n")
	}

	builder.WriteString(indentBody)
	builder.WriteString(`<ul class="`)
	builder.WriteString(classes.text)
	builder.WriteString("\">\n")

	for _, line := range detailLines {
		value := line.extract(record)
		if value == "" {
			continue
		}
		builder.WriteString(indentDetail)
		builder.WriteString("<li><strong>")
		builder.WriteString(line.label)
		builder.WriteString(":</strong> ")
		builder.WriteString(value)
		builder.WriteString("</li>\n")
	}

	builder.WriteString(indentBody)
	builder.WriteString("</ul>\n")
	builder.WriteString(indentCard)
	builder.WriteString("</li>\n")

	return builder.String()
}
