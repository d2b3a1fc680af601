package parser

import (
	"reflect"
	"testing"
)

func TestSplitURLList(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name     string
		urls     string
		expected []string
	}{
		{
			name:     "single entry",
			urls:     "x.com/a",
			expected: []string{"x.com/a"},
		},
		{
			name:     "multiple entries",
			urls:     "a.com<|>b.com<|>c.com",
			expected: []string{"a.com", "b.com", "c.com"},
		},
		{
			name:     "leading delimiter run stripped",
			urls:     "<|> <|>a.com<|>b.com",
			expected: []string{"a.com", "b.com"},
		},
		{
			name:     "empty input yields no entries",
			urls:     "",
			expected: nil,
		},
		{
			name:     "only delimiters yields no entries",
			urls:     "<|><|>",
			expected: nil,
		},
		{
			name:     "empty entry in the middle preserved",
			urls:     "a.com<|><|>b.com",
			expected: []string{"a.com", "", "b.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SplitURLList(tt.urls)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitURLList(%q) = %v, expected %v", tt.urls, got, tt.expected)
			}
		})
	}
}

func TestSplitQueries(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name      string
		fragments []string
		expected  []string
	}{
		{
			name:      "fragments join into one query",
			fragments: []string{"a", "b", "c"},
			expected:  []string{"a b c"},
		},
		{
			name:      "delimiter splits queries",
			fragments: []string{"foo", "%%", "bar"},
			expected:  []string{"foo", "bar"},
		},
		{
			name:      "delimiter inside a fragment",
			fragments: []string{"foo%%bar"},
			expected:  []string{"foo", "bar"},
		},
		{
			name:      "whitespace around delimiter absorbed",
			fragments: []string{"foo ", " %% ", " bar"},
			expected:  []string{"foo", "bar"},
		},
		{
			name:      "leading delimiter run stripped",
			fragments: []string{"%%", "%%", "first"},
			expected:  []string{"first"},
		},
		{
			name:      "interior empty query preserved",
			fragments: []string{"a", "%%", "%%", "b"},
			expected:  []string{"a", "", "b"},
		},
		{
			name:      "no fragments",
			fragments: nil,
			expected:  nil,
		},
		{
			name:      "only delimiters",
			fragments: []string{"%%", "%%"},
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SplitQueries(tt.fragments)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitQueries(%v) = %v, expected %v", tt.fragments, got, tt.expected)
			}
		})
	}
}

func TestSplitTrailingData(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name         string
		entry        string
		expectedURL  string
		expectedData string
	}{
		{
			name:         "no data suffix",
			entry:        "x.com/a",
			expectedURL:  "x.com/a",
			expectedData: "",
		},
		{
			name:         "data suffix split at first marker",
			entry:        "x.com/a<>payload",
			expectedURL:  "x.com/a",
			expectedData: "<>payload",
		},
		{
			name:         "later markers stay in the suffix",
			entry:        "x.com/a<>one<>two",
			expectedURL:  "x.com/a",
			expectedData: "<>one<>two",
		},
		{
			name:         "suffix kept byte for byte",
			entry:        `x.com/a<>{search\+} | raw`,
			expectedURL:  "x.com/a",
			expectedData: `<>{search\+} | raw`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, data := p.splitTrailingData(tt.entry)
			if url != tt.expectedURL || data != tt.expectedData {
				t.Errorf("splitTrailingData(%q) = (%q, %q), expected (%q, %q)",
					tt.entry, url, data, tt.expectedURL, tt.expectedData)
			}
		})
	}
}

func TestScanPlaceholders(t *testing.T) {
	p := New(nil)

	tokens, trailing, err := p.scanPlaceholders(`x.com/?a={search\+}&b={search!2!C\_}#frag`)
	if err != nil {
		t.Fatalf("scanPlaceholders() error = %v", err)
	}

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if trailing != "#frag" {
		t.Errorf("trailing = %q, expected %q", trailing, "#frag")
	}

	first := tokens[0]
	if first.PrecedingText != "x.com/?a=" || first.OptionString != "" || first.Delimiter != "+" || first.Occurrence != 1 {
		t.Errorf("unexpected first token: %+v", first)
	}

	second := tokens[1]
	if second.PrecedingText != "&b=" || second.OptionString != "!2!C" || second.Delimiter != "_" || second.Occurrence != 2 {
		t.Errorf("unexpected second token: %+v", second)
	}
}

func TestScanPlaceholdersIgnoresMalformedTokens(t *testing.T) {
	p := New(nil)

	// No backslash separator: not a placeholder, stays literal text.
	tokens, trailing, err := p.scanPlaceholders("x.com/{search+}")
	if err != nil {
		t.Fatalf("scanPlaceholders() error = %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %d", len(tokens))
	}
	if trailing != "x.com/{search+}" {
		t.Errorf("trailing = %q, expected the full input", trailing)
	}
}
