package contact

import "strings"

// htmlEscaper rewrites the five HTML-reserved characters in a single
// pass, so already-produced entities are never rescanned.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes HTML special characters. This is the sole XSS
// defense for user-supplied fields interpolated into the contact email
// body, which is rendered as HTML by the recipient's client.
func EscapeHTML(unsafe string) string {
	if unsafe == "" {
		return ""
	}
	return htmlEscaper.Replace(unsafe)
}

// EscapeTextWithBreaks escapes text for HTML display while keeping
// line breaks visible as <br> tags.
func EscapeTextWithBreaks(text string) string {
	return strings.ReplaceAll(EscapeHTML(text), "\n", "<br>")
}
