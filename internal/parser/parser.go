package parser

import (
	"strings"
	"time"
)

// Expand runs the full pipeline over the raw urls argument: split into
// entries, expand each, and join the results with the entry delimiter.
// Expansion stops at the first validation error and returns it.
func (p *Parser) Expand(urls string, queries []string) (*ExpandResult, error) {
	startTime := time.Now()

	entries := p.SplitURLList(urls)

	result := &ExpandResult{
		Entries: make([]EntryResult, 0, len(entries)),
	}

	outputs := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryResult, err := p.ExpandEntry(entry, queries)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, *entryResult)
		outputs = append(outputs, entryResult.Output)
	}

	result.Output = strings.Join(outputs, p.cfg.Engine.EntryDelimiter)
	result.ProcessingTime = time.Since(startTime)
	return result, nil
}

// ExpandEntry expands a single URL entry: the data suffix is split off and
// reattached verbatim, placeholders are substituted in scan order, and all
// literal text is escaped with the URL unsafe set.
func (p *Parser) ExpandEntry(entry string, queries []string) (*EntryResult, error) {
	urlText, trailingData := p.splitTrailingData(entry)

	tokens, trailing, err := p.scanPlaceholders(urlText)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for i := range tokens {
		tok := &tokens[i]
		b.WriteString(escapeText(tok.PrecedingText, urlUnsafeChars))

		opts, err := parseOptions(tok.OptionString, p.cfg.Engine.MaxPlaceholders)
		if err != nil {
			return nil, &EntryError{
				Reason:      err.Error(),
				URL:         urlText,
				Placeholder: tok.Raw,
			}
		}

		query, index, ok := selectQuery(queries, opts, tok.Occurrence)
		tok.QueryIndex = index
		if !ok {
			// Query list shorter than needed: the placeholder contributes
			// nothing, which is not an error.
			continue
		}

		query = applyTransforms(query, opts)
		encoded := escapeText(query, queryUnsafeChars)
		b.WriteString(strings.ReplaceAll(encoded, " ", tok.Delimiter))
	}
	b.WriteString(escapeText(trailing, urlUnsafeChars))

	urlOut := b.String()
	return &EntryResult{
		Input:        entry,
		URL:          urlOut,
		TrailingData: trailingData,
		Output:       urlOut + trailingData,
		Placeholders: tokens,
	}, nil
}
