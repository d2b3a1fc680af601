package parser

import "testing"

func TestSelectQuery(t *testing.T) {
	queries := []string{"first", "second", "third"}

	tests := []struct {
		name       string
		opts       optionSet
		occurrence int
		expected   string
		expectedOK bool
	}{
		{
			name:       "occurrence picks queries in order",
			occurrence: 2,
			expected:   "second",
			expectedOK: true,
		},
		{
			name:       "explicit position overrides occurrence",
			opts:       optionSet{queryPosition: 3},
			occurrence: 1,
			expected:   "third",
			expectedOK: true,
		},
		{
			name:       "occurrence past the list misses",
			occurrence: 4,
			expectedOK: false,
		},
		{
			name:       "explicit position past the list misses",
			opts:       optionSet{queryPosition: 8},
			occurrence: 1,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := selectQuery(queries, &tt.opts, tt.occurrence)
			if ok != tt.expectedOK {
				t.Fatalf("selectQuery() ok = %v, expected %v", ok, tt.expectedOK)
			}
			if got != tt.expected {
				t.Errorf("selectQuery() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestApplyTransforms(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		opts     optionSet
		expected string
	}{
		{
			name:     "no options leave the query alone",
			query:    "hello world",
			expected: "hello world",
		},
		{
			name:     "word filter keeps listed positions in order",
			query:    "alpha beta gamma delta",
			opts:     optionSet{wordOnly: []int{2, 0}},
			expected: "gamma alpha",
		},
		{
			name:     "word filter repeats a word",
			query:    "alpha beta",
			opts:     optionSet{wordOnly: []int{0, 0}},
			expected: "alpha alpha",
		},
		{
			name:     "word filter skips out of range positions",
			query:    "alpha beta",
			opts:     optionSet{wordOnly: []int{0, 7}},
			expected: "alpha",
		},
		{
			name:     "uppercase everything",
			query:    "mixed Case text",
			opts:     optionSet{upper: UpperCaseSpec{All: true}},
			expected: "MIXED CASE TEXT",
		},
		{
			name:     "uppercase selected words",
			query:    "alpha beta gamma",
			opts:     optionSet{upper: UpperCaseSpec{Positions: []int{0, 2}}},
			expected: "ALPHA beta GAMMA",
		},
		{
			name:     "uppercase all wins over positions",
			query:    "alpha beta",
			opts:     optionSet{upper: UpperCaseSpec{All: true, Positions: []int{1}}},
			expected: "ALPHA BETA",
		},
		{
			name:     "capitalize each word",
			query:    "foo bar  baz",
			opts:     optionSet{capitalize: true},
			expected: "Foo Bar  Baz",
		},
		{
			name:     "reverse preserves spacing",
			query:    "a  b c",
			opts:     optionSet{reverseWords: true},
			expected: "c b  a",
		},
		{
			name:     "strip commas removes encoded commas only",
			query:    "a%2Cb,c",
			opts:     optionSet{stripCommas: true},
			expected: "ab,c",
		},
		{
			name:     "filter runs before uppercase",
			query:    "alpha beta gamma",
			opts:     optionSet{wordOnly: []int{1}, upper: UpperCaseSpec{Positions: []int{0}}},
			expected: "BETA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyTransforms(tt.query, &tt.opts)
			if got != tt.expected {
				t.Errorf("applyTransforms(%q) = %q, expected %q", tt.query, got, tt.expected)
			}
		})
	}
}
