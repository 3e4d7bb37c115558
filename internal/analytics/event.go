package analytics

import (
	"sort"

	"github.com/go-playground/validator/v10"
)

// Event names form a closed set; anything else is rejected.
const (
	EventPageView          = "page_view"
	EventResumeDownload    = "resume_download"
	EventContactFormSubmit = "contact_form_submit"
	EventProjectView       = "project_view"
	EventBlogPostView      = "blog_post_view"
	EventExternalLinkClick = "external_link_click"
)

// Event is one tracking payload. Request-scoped; never stored.
type Event struct {
	Event      string                 `json:"event" validate:"required,oneof=page_view resume_download contact_form_submit project_view blog_post_view external_link_click"`
	Properties map[string]interface{} `json:"properties"`
}

// Property caps applied before forwarding to the collector.
const (
	maxProperties   = 10
	maxKeyLen       = 50
	maxStringValLen = 200
)

// FieldErrors maps a field name to its violation message.
type FieldErrors map[string]string

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the event name against the closed set.
func Validate(ev Event) FieldErrors {
	if err := validate.Struct(ev); err != nil {
		return FieldErrors{"event": "Unknown event name"}
	}
	return nil
}

// TruncateProperties applies the size caps: at most 10 entries, keys
// cut to 50 characters, string values cut to 200. Non-string values
// pass through with their type unchanged. Entries are taken in sorted
// key order so truncation is deterministic (decoded JSON objects carry
// no ordering).
func TruncateProperties(props map[string]interface{}) map[string]interface{} {
	if props == nil {
		return map[string]interface{}{}
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > maxProperties {
		keys = keys[:maxProperties]
	}

	out := make(map[string]interface{}, len(keys))
	for _, k := range keys {
		v := props[k]
		if s, ok := v.(string); ok && len(s) > maxStringValLen {
			v = s[:maxStringValLen]
		}
		key := k
		if len(key) > maxKeyLen {
			key = key[:maxKeyLen]
		}
		out[key] = v
	}
	return out
}
