package page

import "github.com/goliatone/go-animalgen/pkg/animal"

// BannerKind discriminates the heading fragment emitted ahead of the cards.
type BannerKind string

const (
	// BannerFilter heads a local-flow page: "Filtered by: <key>".
	BannerFilter BannerKind = "filter"
	// BannerResults heads a remote-flow page, naming the original query and
	// the selected grouping key.
	BannerResults BannerKind = "results"
	// BannerError replaces the card list when a remote query matched nothing.
	BannerError BannerKind = "error"
)

// Banner describes the optional heading or error fragment of a page.
type Banner struct {
	Kind  BannerKind
	Query string
	Key   string
}

// FilterBanner builds the local-flow heading for the selected grouping key.
func FilterBanner(key string) *Banner {
	return &Banner{Kind: BannerFilter, Key: key}
}

// ResultsBanner builds the remote-flow heading naming query and selection.
func ResultsBanner(query, key string) *Banner {
	return &Banner{Kind: BannerResults, Query: query, Key: key}
}

// ErrorBanner builds the empty-result banner naming the failed query.
func ErrorBanner(query string) *Banner {
	return &Banner{Kind: BannerError, Query: query}
}

// Model is everything a page renderer needs: the records to format, in
// order, and an optional banner. It is built, rendered, and discarded within
// a single pipeline pass.
type Model struct {
	Banner  *Banner
	Records []animal.Record
}
