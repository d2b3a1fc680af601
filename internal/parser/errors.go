package parser

import "strings"

// EntryError describes a validation failure within one URL entry. All entry
// errors are fatal: expansion stops at the first one and produces no output.
type EntryError struct {
	// Reason is a short description of the failure.
	Reason string
	// URL is the offending URL text (without the data suffix).
	URL string
	// Placeholder is the offending placeholder token, empty when the error
	// concerns the entry as a whole.
	Placeholder string
}

// Error returns a multi-line message carrying the offending URL and
// placeholder text for diagnosis.
func (e *EntryError) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)
	if e.Placeholder != "" {
		b.WriteString("\n  placeholder: ")
		b.WriteString(e.Placeholder)
	}
	if e.URL != "" {
		b.WriteString("\n  url: ")
		b.WriteString(e.URL)
	}
	return b.String()
}
