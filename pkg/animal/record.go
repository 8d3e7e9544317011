package animal

import "strings"

// Record is one animal's loosely structured data as returned by local
// datasets and the remote lookup API. Every field is optional; readers go
// through the safe accessors below so a missing or oddly-typed field is a
// normal state, never a panic.
type Record map[string]any

// Recognized characteristic keys, in the order the card renderer emits them.
const (
	CharacteristicDiet        = "diet"
	CharacteristicType        = "type"
	CharacteristicTemperament = "temperament"
	CharacteristicLitterSize  = "average_litter_size"
	CharacteristicLifespan    = "lifespan"
)

// String returns the string value at the given key path, descending through
// nested mappings. Missing keys, non-mapping intermediates, and non-string
// leaves all yield the empty string.
func (r Record) String(path ...string) string {
	return r.StringOr("", path...)
}

// StringOr behaves like String but returns fallback when the path does not
// resolve to a non-empty string.
func (r Record) StringOr(fallback string, path ...string) string {
	if len(path) == 0 {
		return fallback
	}

	current := r
	for _, key := range path[:len(path)-1] {
		current = current.Map(key)
		if current == nil {
			return fallback
		}
	}

	value, ok := current[path[len(path)-1]]
	if !ok {
		return fallback
	}
	text, ok := value.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

// Map returns the nested mapping stored under key, or nil when the key is
// absent or holds a different shape.
func (r Record) Map(key string) Record {
	if r == nil {
		return nil
	}
	switch value := r[key].(type) {
	case map[string]any:
		return Record(value)
	case Record:
		return value
	default:
		return nil
	}
}

// Strings returns the ordered string sequence stored under key. Non-string
// elements are skipped; absent or differently-shaped values yield nil.
func (r Record) Strings(key string) []string {
	if r == nil {
		return nil
	}
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, element := range raw {
		if text, ok := element.(string); ok {
			out = append(out, text)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Name returns the animal's display name, empty when absent.
func (r Record) Name() string {
	return r.String("name")
}

// ScientificName returns taxonomy.scientific_name, empty when absent.
func (r Record) ScientificName() string {
	return r.String("taxonomy", "scientific_name")
}

// Location returns the first entry of the locations sequence; absent or
// empty sequences yield the empty string.
func (r Record) Location() string {
	locations := r.Strings("locations")
	if len(locations) == 0 {
		return ""
	}
	return locations[0]
}

// Characteristic returns the named entry from the characteristics mapping.
func (r Record) Characteristic(name string) string {
	return r.String("characteristics", name)
}
