package content

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// parseFrontMatter splits a content file into its YAML header and body.
// The header must be bracketed by "---" lines at the very top of the
// file. The decoded header lands in meta; the returned string is the
// body with the delimiters stripped.
func parseFrontMatter(raw []byte, meta interface{}) (string, error) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	if !strings.HasPrefix(text, frontMatterDelim+"\n") {
		return "", errors.New("front matter: missing opening delimiter")
	}

	rest := text[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return "", errors.New("front matter: missing closing delimiter")
	}

	header := rest[:end]
	body := rest[end+1+len(frontMatterDelim):]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(header), meta); err != nil {
		return "", fmt.Errorf("front matter: %w", err)
	}

	return body, nil
}

const wordsPerMinute = 200

// readingTime estimates reading minutes for a body of markup, rounding
// up. Derived at load time; an authored value is never trusted.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
