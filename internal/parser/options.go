package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// optionTokenRegex matches one option token at the start of the options
// segment. The vocabulary is fixed and closed: !N (1-2 digits), !W[PP],
// !U[PP], !C, !R, !M, concatenated with no separators.
var optionTokenRegex = regexp.MustCompile(`^!(?:([0-9]{1,2})|W([0-9]{0,2})|U([0-9]{0,2})|([CRM]))`)

// parseOptions parses a placeholder's options segment into an optionSet.
// maxPosition bounds the explicit query position accepted by !N.
// The whole segment must consist of valid tokens or parsing fails.
func parseOptions(optionString string, maxPosition int) (*optionSet, error) {
	opts := &optionSet{}

	rest := optionString
	for rest != "" {
		m := optionTokenRegex.FindStringSubmatch(rest)
		if m == nil {
			return nil, fmt.Errorf("invalid options %q", optionString)
		}

		switch {
		case m[1] != "":
			// !N: explicit query position, 1-based
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 || n > maxPosition {
				return nil, fmt.Errorf("query position %s out of range [1, %d]", m[1], maxPosition)
			}
			opts.queryPosition = n
		case strings.HasPrefix(m[0], "!W"):
			if m[2] == "" {
				return nil, fmt.Errorf("word position missing after !W")
			}
			n, _ := strconv.Atoi(m[2])
			opts.wordOnly = append(opts.wordOnly, n-1)
		case strings.HasPrefix(m[0], "!U"):
			if m[3] == "" {
				// Bare !U uppercases every word; overrides any positions.
				opts.upper.All = true
			} else {
				n, _ := strconv.Atoi(m[3])
				opts.upper.Positions = append(opts.upper.Positions, n-1)
			}
		case m[4] == "C":
			opts.capitalize = true
		case m[4] == "R":
			opts.reverseWords = true
		case m[4] == "M":
			opts.stripCommas = true
		}

		rest = rest[len(m[0]):]
	}

	return opts, nil
}
