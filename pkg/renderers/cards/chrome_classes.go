package cards

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassItem     ChromeClass = "cards__item"
	ClassTitle    ChromeClass = "card__title"
	ClassSubtitle ChromeClass = "card__subtitle"
	ClassText     ChromeClass = "card__text"
	ClassHeading  ChromeClass = "cards__heading"
	ClassError    ChromeClass = "cards__error"
)

// Slot names accepted in RenderOptions.ChromeClasses overrides.
const (
	SlotItem     = "item"
	SlotTitle    = "title"
	SlotSubtitle = "subtitle"
	SlotText     = "text"
	SlotHeading  = "heading"
	SlotError    = "error"
)

// chromeClasses holds the resolved class per slot for one render pass.
type chromeClasses struct {
	item     string
	title    string
	subtitle string
	text     string
	heading  string
	errorCls string
}

func resolveChromeClasses(overrides map[string]string) chromeClasses {
	resolved := chromeClasses{
		item:     string(ClassItem),
		title:    string(ClassTitle),
		subtitle: string(ClassSubtitle),
		text:     string(ClassText),
		heading:  string(ClassHeading),
		errorCls: string(ClassError),
	}
	if len(overrides) == 0 {
		return resolved
	}
	apply := func(slot string, dst *string) {
		if value := overrides[slot]; value != "" {
			*dst = value
		}
	}
	apply(SlotItem, &resolved.item)
	apply(SlotTitle, &resolved.title)
	apply(SlotSubtitle, &resolved.subtitle)
	apply(SlotText, &resolved.text)
	apply(SlotHeading, &resolved.heading)
	apply(SlotError, &resolved.errorCls)
	return resolved
}
