package page

import (
	"errors"
	"strings"
)

// Placeholder is the marker token the template must carry exactly once.
const Placeholder = "__REPLACE_ANIMALS_INFO__"

// ErrPlaceholderMissing reports a template without the placeholder token.
// Substitution is skipped, not partial: callers receive the template
// unchanged alongside this error.
var ErrPlaceholderMissing = errors.New("page: template placeholder missing")

// Substitute replaces the first whole occurrence of Placeholder in template
// with content. A template without the token is returned unmodified together
// with ErrPlaceholderMissing so the caller can report the diagnostic and
// still produce a page.
func Substitute(template, content string) (string, error) {
	if !strings.Contains(template, Placeholder) {
		return template, ErrPlaceholderMissing
	}
	return strings.Replace(template, Placeholder, content, 1), nil
}
