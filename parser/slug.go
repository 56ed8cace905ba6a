package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowercase = cases.Lower(language.Und)

// Slug derives a URL-safe id from heading text: lowercase, drop everything
// outside letters, digits, underscores, spaces and hyphens, then collapse
// whitespace and hyphen runs into single hyphens. Slugs are not deduplicated;
// two headings with the same text share an id.
func Slug(text string) string {
	text = lowercase.String(text)
	var sb strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}
	slug := strings.Join(strings.Fields(sb.String()), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
