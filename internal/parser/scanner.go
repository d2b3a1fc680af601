package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRegex matches one placeholder token: `{search`, an options
// segment (anything but a backslash), a backslash, a delimiter segment
// (anything but `}`), and the closing `}`. Matching is purely textual and
// not URL-aware.
var placeholderRegex = regexp.MustCompile(`\{search([^\\]*)\\([^}]*)\}`)

// leadingSeparatorRegexp matches a leading run of (optional whitespace +
// separator + optional whitespace) sequences.
func leadingSeparatorRegexp(sep string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*` + regexp.QuoteMeta(sep) + `\s*)+`)
}

// separatorRegexp matches the separator with optional surrounding whitespace.
func separatorRegexp(sep string) *regexp.Regexp {
	return regexp.MustCompile(`\s*` + regexp.QuoteMeta(sep) + `\s*`)
}

// SplitURLList splits the raw urls argument into individual URL entries.
// Leading entry-delimiter runs are stripped first; an argument that is empty
// after stripping yields no entries.
func (p *Parser) SplitURLList(urls string) []string {
	urls = p.leadingEntrySep.ReplaceAllString(urls, "")
	if urls == "" {
		return nil
	}
	return strings.Split(urls, p.cfg.Engine.EntryDelimiter)
}

// SplitQueries joins the query fragments with single spaces and splits the
// result on the query delimiter. Leading delimiter runs are stripped so the
// first non-empty query lands at index 0; empty queries elsewhere in the
// list are preserved.
func (p *Parser) SplitQueries(fragments []string) []string {
	source := strings.TrimSpace(strings.Join(fragments, " "))
	source = p.leadingQuerySep.ReplaceAllString(source, "")
	if source == "" {
		return nil
	}
	return p.querySplit.Split(source, -1)
}

// splitTrailingData splits an entry into its URL portion and the opaque data
// suffix starting at the first data delimiter. The suffix, delimiter
// included, is preserved byte-for-byte.
func (p *Parser) splitTrailingData(entry string) (urlText, trailingData string) {
	if idx := strings.Index(entry, p.cfg.Engine.DataDelimiter); idx >= 0 {
		return entry[:idx], entry[idx:]
	}
	return entry, ""
}

// scanPlaceholders scans urlText left to right for placeholder tokens,
// returning the tokens and the unmatched trailing literal text. It enforces
// the per-URL placeholder cap and the delimiter invariants.
func (p *Parser) scanPlaceholders(urlText string) ([]Placeholder, string, error) {
	var tokens []Placeholder
	cursor := 0

	for {
		loc := placeholderRegex.FindStringSubmatchIndex(urlText[cursor:])
		if loc == nil {
			break
		}

		raw := urlText[cursor+loc[0] : cursor+loc[1]]
		tok := Placeholder{
			Raw:           raw,
			PrecedingText: urlText[cursor : cursor+loc[0]],
			OptionString:  urlText[cursor+loc[2] : cursor+loc[3]],
			Delimiter:     urlText[cursor+loc[4] : cursor+loc[5]],
			Occurrence:    len(tokens) + 1,
		}

		if len(tokens) == 0 && cursor+loc[0] == 0 {
			return nil, "", &EntryError{
				Reason:      "search placeholder cannot be the first character of a url",
				URL:         urlText,
				Placeholder: raw,
			}
		}

		if len(tokens) == p.cfg.Engine.MaxPlaceholders {
			return nil, "", &EntryError{
				Reason:      fmt.Sprintf("too many search placeholders in one url (max %d)", p.cfg.Engine.MaxPlaceholders),
				URL:         urlText,
				Placeholder: raw,
			}
		}

		if err := p.validateDelimiter(urlText, &tok); err != nil {
			return nil, "", err
		}

		tokens = append(tokens, tok)
		cursor += loc[1]
	}

	return tokens, urlText[cursor:], nil
}

// validateDelimiter enforces the delimiter invariants: non-empty, within the
// length cap, and free of literal spaces (space marks query word breaks).
func (p *Parser) validateDelimiter(urlText string, tok *Placeholder) error {
	switch {
	case tok.Delimiter == "":
		return &EntryError{
			Reason:      "search placeholder delimiter missing",
			URL:         urlText,
			Placeholder: tok.Raw,
		}
	case len(tok.Delimiter) > p.cfg.Engine.MaxDelimiterLength:
		return &EntryError{
			Reason:      fmt.Sprintf("search placeholder delimiter exceeds %d characters", p.cfg.Engine.MaxDelimiterLength),
			URL:         urlText,
			Placeholder: tok.Raw,
		}
	case strings.Contains(tok.Delimiter, " "):
		return &EntryError{
			Reason:      "search placeholder delimiter must not contain a space",
			URL:         urlText,
			Placeholder: tok.Raw,
		}
	}
	return nil
}
