package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTMLReservedCharacters(t *testing.T) {
	out := EscapeHTML(`<script>alert("x&y") + 'z'</script>`)

	// None of the five reserved characters may survive unescaped.
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.NotContains(t, out, `"`)
	assert.NotContains(t, out, "'")
	// Every remaining ampersand must open an entity we produced.
	stripped := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&#039;", "").Replace(out)
	assert.NotContains(t, stripped, "&")

	assert.Equal(t, "&lt;script&gt;alert(&quot;x&amp;y&quot;) + &#039;z&#039;&lt;/script&gt;", out)
}

func TestEscapeHTMLCleanStringUnchanged(t *testing.T) {
	assert.Equal(t, "plain text, no markup", EscapeHTML("plain text, no markup"))
	assert.Equal(t, "", EscapeHTML(""))
}

func TestEscapeHTMLIsNotIdempotent(t *testing.T) {
	once := EscapeHTML("&")
	twice := EscapeHTML(once)
	assert.Equal(t, "&amp;", once)
	assert.Equal(t, "&amp;amp;", twice)
}

func TestEscapeTextWithBreaks(t *testing.T) {
	out := EscapeTextWithBreaks("line one\nline <two>")
	assert.Equal(t, "line one<br>line &lt;two&gt;", out)
}
