// Package parser implements the search-placeholder expansion engine for urlfill.
//
// A URL template contains placeholder tokens of the form
//
//	{search<options>\<delimiter>}
//
// where <options> is a compact, closed option vocabulary (!N, !W<P>, !U[P],
// !C, !R, !M) selecting which query string is spliced in and how it is
// transformed, and <delimiter> replaces spaces in the encoded query text.
package parser

import (
	"regexp"
	"time"

	"urlfill/internal/config"
)

// Parser expands placeholder tokens in URL templates. It is stateless apart
// from its immutable configuration and safe for concurrent use.
type Parser struct {
	cfg *config.Config

	leadingEntrySep *regexp.Regexp
	leadingQuerySep *regexp.Regexp
	querySplit      *regexp.Regexp
}

// Option is a functional option for configuring the Parser.
type Option func(*Parser)

// ExpandResult represents the result of expanding a full URL-list argument.
type ExpandResult struct {
	// Output is the final processed line: expanded entries joined by the
	// entry delimiter, without a trailing delimiter.
	Output string `json:"output"`
	// Entries holds the per-entry breakdown in input order.
	Entries []EntryResult `json:"entries"`
	// ProcessingTime is the time taken to expand the input.
	ProcessingTime time.Duration `json:"processing_time"`
}

// EntryResult represents one expanded URL entry.
type EntryResult struct {
	// Input is the raw entry text, including any trailing data suffix.
	Input string `json:"input"`
	// URL is the expanded and escaped URL text, without the data suffix.
	URL string `json:"url"`
	// TrailingData is the opaque data suffix, preserved byte-for-byte.
	// Empty when the entry carried none.
	TrailingData string `json:"trailing_data,omitempty"`
	// Output is URL with TrailingData reattached.
	Output string `json:"output"`
	// Placeholders holds the scanned placeholder tokens in match order.
	Placeholders []Placeholder `json:"placeholders,omitempty"`
}

// Placeholder is one scanned placeholder token within a URL entry.
type Placeholder struct {
	// Raw is the full matched token text, e.g. `{search!2\+}`.
	Raw string `json:"raw"`
	// PrecedingText is the literal text between the previous match and this one.
	PrecedingText string `json:"preceding_text"`
	// OptionString is the raw options segment, possibly empty.
	OptionString string `json:"options"`
	// Delimiter replaces spaces in the encoded query text.
	Delimiter string `json:"delimiter"`
	// Occurrence is the 1-based position of this placeholder within its URL.
	Occurrence int `json:"occurrence"`
	// QueryIndex is the resolved 0-based index into the query list.
	QueryIndex int `json:"query_index"`
}

// UpperCaseSpec selects which words of the query are uppercased.
// All wins over Positions when both are set.
type UpperCaseSpec struct {
	All       bool
	Positions []int // 0-based word positions
}

// optionSet is the parsed form of a placeholder's options segment.
type optionSet struct {
	// queryPosition is the explicit 1-based query position (!N), 0 when unset.
	queryPosition int
	// wordOnly lists 0-based word positions to keep (!W), in token order.
	wordOnly     []int
	upper        UpperCaseSpec
	capitalize   bool
	reverseWords bool
	stripCommas  bool
}

// New creates a new Parser instance with the given configuration.
func New(cfg *config.Config, opts ...Option) *Parser {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	p := &Parser{
		cfg:             cfg,
		leadingEntrySep: leadingSeparatorRegexp(cfg.Engine.EntryDelimiter),
		leadingQuerySep: leadingSeparatorRegexp(cfg.Engine.QueryDelimiter),
		querySplit:      separatorRegexp(cfg.Engine.QueryDelimiter),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// EngineConfig returns the engine constants the parser was built with.
func (p *Parser) EngineConfig() config.EngineConfig {
	return p.cfg.Engine
}
