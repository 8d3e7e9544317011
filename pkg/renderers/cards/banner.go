package cards

import (
	"strings"

	"github.com/goliatone/go-animalgen/pkg/page"
)

// buildBannerMarkup renders the optional heading or error fragment emitted
// ahead of the card list. Unknown kinds produce nothing.
func buildBannerMarkup(banner *page.Banner, classes chromeClasses) string {
	if banner == nil {
		return ""
	}

	var builder strings.Builder
	switch banner.Kind {
	case page.BannerFilter:
		builder.WriteString(indentCard)
		builder.WriteString(`<h2 class="`)
		builder.WriteString(classes.heading)
		builder.WriteString(`">Filtered by: `)
		builder.WriteString(banner.Key)
		builder.WriteString("</h2>\n")
	case page.BannerResults:
		builder.WriteString(indentCard)
		builder.WriteString(`<h2 class="`)
		builder.WriteString(classes.heading)
		builder.WriteString(`">Results for "`)
		builder.WriteString(banner.Query)
		builder.WriteString(`", filtered by: `)
		builder.WriteString(banner.Key)
		builder.WriteString("</h2>\n")
	case page.BannerError:
		builder.WriteString(indentCard)
		builder.WriteString(`<h2 class="`)
		builder.WriteString(classes.errorCls)
		builder.WriteString(`">The animal "`)
		builder.WriteString(banner.Query)
		builder.WriteString("\" doesn't exist.</h2>\n")
	}
	return builder.String()
}
