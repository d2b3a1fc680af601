package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// wordWithTrailing matches a word together with its trailing whitespace run.
	wordWithTrailing = regexp.MustCompile(`\S+\s*`)
	// wordOrSpaceRun matches either a word or a whitespace run.
	wordOrSpaceRun = regexp.MustCompile(`\S+|\s+`)
)

// selectQuery picks the query string for a placeholder: the explicit 1-based
// position when !N was given, the placeholder's occurrence index otherwise.
// ok is false when the query list has no entry at the resolved index; the
// placeholder then contributes nothing and no transforms run.
func selectQuery(queries []string, opts *optionSet, occurrence int) (query string, index int, ok bool) {
	index = occurrence - 1
	if opts.queryPosition > 0 {
		index = opts.queryPosition - 1
	}
	if index >= len(queries) {
		return "", index, false
	}
	return queries[index], index, true
}

// applyTransforms applies the option transforms to the selected query in
// their fixed order: word-only filter, uppercase, capitalize, reverse,
// comma stripping.
func applyTransforms(query string, opts *optionSet) string {
	if len(opts.wordOnly) > 0 {
		query = filterWords(query, opts.wordOnly)
	}

	if opts.upper.All {
		query = strings.ToUpper(query)
	} else if len(opts.upper.Positions) > 0 {
		query = upperWords(query, opts.upper.Positions)
	}

	if opts.capitalize {
		query = capitalizeWords(query)
	}

	if opts.reverseWords {
		query = reverseWordOrder(query)
	}

	if opts.stripCommas {
		// Targets the percent-encoded comma even though escaping has not run
		// yet, so this only removes literal %2C sequences already present in
		// the query text. Kept as-is for compatibility with the historical
		// behavior.
		query = strings.ReplaceAll(query, encodedComma, "")
	}

	return query
}

// filterWords rebuilds the query from the selected 0-based word positions in
// the order listed. Duplicates are allowed, out-of-range positions are
// skipped, and trailing whitespace is trimmed from the result.
func filterWords(query string, positions []int) string {
	words := wordWithTrailing.FindAllString(query, -1)

	var b strings.Builder
	for _, pos := range positions {
		if pos >= 0 && pos < len(words) {
			b.WriteString(words[pos])
		}
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// upperWords uppercases the words at the given 0-based positions in place,
// skipping out-of-range positions.
func upperWords(query string, positions []int) string {
	selected := make(map[int]bool, len(positions))
	for _, pos := range positions {
		selected[pos] = true
	}

	tokens := wordOrSpaceRun.FindAllString(query, -1)
	word := 0
	for i, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		if selected[word] {
			tokens[i] = strings.ToUpper(tok)
		}
		word++
	}

	return strings.Join(tokens, "")
}

// capitalizeWords uppercases the first letter after every word boundary.
func capitalizeWords(query string) string {
	runes := []rune(query)
	atBoundary := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			atBoundary = true
			continue
		}
		if atBoundary {
			runes[i] = unicode.ToUpper(r)
			atBoundary = false
		}
	}
	return string(runes)
}

// reverseWordOrder reverses the full word/whitespace token sequence, which
// reverses word order while preserving the original inter-word spacing.
func reverseWordOrder(query string) string {
	tokens := wordOrSpaceRun.FindAllString(query, -1)
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return strings.Join(tokens, "")
}
