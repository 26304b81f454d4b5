// Package populate performs the placeholder substitution that turns an
// umbrella header template into the final header text.
package populate

import "strings"

// Placeholder tokens recognized in template text. Replacement is literal
// substring substitution: no nesting, no escaping.
const (
	TokenContent = "@GENERATED_CONTENT@"
	TokenDate    = "@DATE@"
	TokenYear    = "@YEAR@"
)

// Apply replaces every occurrence of the three placeholder tokens in template.
// Embedded newlines in content are preserved as literal line breaks. The three
// substitutions are independent and repeatable; a placeholder that does not
// appear is silently a no-op. A template with no placeholders is returned
// unchanged.
func Apply(template, content, date, year string) string {
	out := strings.ReplaceAll(template, TokenContent, content)
	out = strings.ReplaceAll(out, TokenDate, date)
	out = strings.ReplaceAll(out, TokenYear, year)
	return out
}
