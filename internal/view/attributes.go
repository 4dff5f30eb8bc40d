package view

import "github.com/mahmoudabadi/portfolio/internal/locale"

// Attributes are the document-root values derived from the active language.
// They are the only state that leaves the rendered tree (html lang/dir and the
// body typography class).
type Attributes struct {
	Lang      locale.Code      `json:"lang"`
	Dir       locale.Direction `json:"dir"`
	FontClass string           `json:"font_class"`
}

var fontClasses = map[locale.Code]string{
	locale.Persian: "font-vazir",
	locale.Arabic:  "font-amiri",
	locale.English: "font-poppins",
}

// FontClass returns the typography token for a language.
func FontClass(code locale.Code) string {
	return fontClasses[code]
}

func deriveAttributes(l locale.Locale) Attributes {
	return Attributes{
		Lang:      l.Code,
		Dir:       l.Direction,
		FontClass: FontClass(l.Code),
	}
}
