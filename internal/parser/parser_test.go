package parser

import (
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name      string
		urls      string
		fragments []string
		expected  string
	}{
		{
			name:      "simple query substitution",
			urls:      `https://www.google.com/search?q={search\+}`,
			fragments: []string{"a", "b"},
			expected:  "https://www.google.com/search?q=a+b",
		},
		{
			name:      "queries feed placeholders in order",
			urls:      `x.com/?a={search\+}&b={search\+}`,
			fragments: []string{"foo", "%%", "bar"},
			expected:  "x.com/?a=foo&b=bar",
		},
		{
			name:      "explicit position reuses a query",
			urls:      `x.com/{search\+}-{search!2\+}-{search!2\+}`,
			fragments: []string{"a", "%%", "b"},
			expected:  "x.com/a-b-b",
		},
		{
			name:      "missing query contributes nothing",
			urls:      `x.com/?a={search\+}&b={search\+}`,
			fragments: []string{"only"},
			expected:  "x.com/?a=only&b=",
		},
		{
			name:      "custom delimiter replaces spaces",
			urls:      `https://en.wikipedia.org/wiki/{search\_}`,
			fragments: []string{"golang", "rocks"},
			expected:  "https://en.wikipedia.org/wiki/golang_rocks",
		},
		{
			name:      "multiple url entries",
			urls:      `a.com/{search\+}<|>b.com/{search\_}`,
			fragments: []string{"x", "y"},
			expected:  "a.com/x+y<|>b.com/x_y",
		},
		{
			name:      "leading entry delimiters are stripped",
			urls:      `<|><|>x.com/{search\+}`,
			fragments: []string{"q"},
			expected:  "x.com/q",
		},
		{
			name:      "trailing data passes through untouched",
			urls:      `x.com/{search\+}<>raw {data|kept} verbatim`,
			fragments: []string{"q"},
			expected:  "x.com/q<>raw {data|kept} verbatim",
		},
		{
			name:      "query characters are percent encoded",
			urls:      `x.com/?q={search\+}`,
			fragments: []string{"c++", "says:", "hi!"},
			expected:  "x.com/?q=c%2B%2B+says%3A+hi%21",
		},
		{
			name:      "empty url list expands to nothing",
			urls:      "",
			fragments: []string{"q"},
			expected:  "",
		},
		{
			name:      "no queries leaves placeholders empty",
			urls:      `x.com/?q={search\+}`,
			fragments: nil,
			expected:  "x.com/?q=",
		},
		{
			name:      "word filter keeps listed words",
			urls:      `x.com/{search!W1!W3\+}`,
			fragments: []string{"alpha", "beta", "gamma"},
			expected:  "x.com/alpha+gamma",
		},
		{
			name:      "uppercase all words",
			urls:      `x.com/{search!U\+}`,
			fragments: []string{"a", "b"},
			expected:  "x.com/A+B",
		},
		{
			name:      "uppercase a single word",
			urls:      `x.com/{search!U2\+}`,
			fragments: []string{"alpha", "beta", "gamma"},
			expected:  "x.com/alpha+BETA+gamma",
		},
		{
			name:      "capitalize words",
			urls:      `x.com/{search!C\_}`,
			fragments: []string{"foo", "bar"},
			expected:  "x.com/Foo_Bar",
		},
		{
			name:      "reverse word order",
			urls:      `x.com/{search!R\+}`,
			fragments: []string{"alpha", "beta"},
			expected:  "x.com/beta+alpha",
		},
		{
			name:      "combined options apply in fixed order",
			urls:      `x.com/{search!W1!W2!U1!R\+}`,
			fragments: []string{"alpha", "beta", "gamma"},
			expected:  "x.com/beta+ALPHA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := p.SplitQueries(tt.fragments)
			result, err := p.Expand(tt.urls, queries)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if result.Output != tt.expected {
				t.Errorf("Expand() = %q, expected %q", result.Output, tt.expected)
			}
		})
	}
}

func TestExpandErrors(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name   string
		urls   string
		reason string
	}{
		{
			name:   "placeholder cannot start the url",
			urls:   `{search\+}x.com`,
			reason: "first character",
		},
		{
			name:   "too many placeholders",
			urls:   "x.com/" + strings.Repeat(`{search\+}`, 9),
			reason: "too many search placeholders",
		},
		{
			name:   "missing delimiter",
			urls:   `x.com/{search\}`,
			reason: "delimiter missing",
		},
		{
			name:   "delimiter too long",
			urls:   `x.com/{search\12345678}`,
			reason: "exceeds 7 characters",
		},
		{
			name:   "delimiter contains a space",
			urls:   `x.com/{search\a b}`,
			reason: "must not contain a space",
		},
		{
			name:   "query position out of range",
			urls:   `x.com/{search!9\+}`,
			reason: "out of range",
		},
		{
			name:   "query position zero",
			urls:   `x.com/{search!0\+}`,
			reason: "out of range",
		},
		{
			name:   "unknown option",
			urls:   `x.com/{search!Z\+}`,
			reason: "invalid options",
		},
		{
			name:   "word filter without position",
			urls:   `x.com/{search!W\+}`,
			reason: "word position missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Expand(tt.urls, []string{"a", "b"})
			if err == nil {
				t.Fatalf("Expand() expected error containing %q, got nil", tt.reason)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("Expand() error = %q, expected it to contain %q", err, tt.reason)
			}
		})
	}
}

func TestExpandErrorCarriesContext(t *testing.T) {
	p := New(nil)

	_, err := p.Expand(`x.com/{search!W\+}`, []string{"a"})
	if err == nil {
		t.Fatal("Expand() expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "placeholder: {search!W\\+}") {
		t.Errorf("error %q should name the offending placeholder", msg)
	}
	if !strings.Contains(msg, "url: x.com/{search!W\\+}") {
		t.Errorf("error %q should name the offending url", msg)
	}
}

func TestExpandEntryBreakdown(t *testing.T) {
	p := New(nil)

	result, err := p.ExpandEntry(`x.com/{search\+}<>extra`, []string{"a b"})
	if err != nil {
		t.Fatalf("ExpandEntry() error = %v", err)
	}

	if result.URL != "x.com/a+b" {
		t.Errorf("URL = %q, expected %q", result.URL, "x.com/a+b")
	}
	if result.TrailingData != "<>extra" {
		t.Errorf("TrailingData = %q, expected %q", result.TrailingData, "<>extra")
	}
	if result.Output != "x.com/a+b<>extra" {
		t.Errorf("Output = %q, expected %q", result.Output, "x.com/a+b<>extra")
	}
	if len(result.Placeholders) != 1 {
		t.Fatalf("expected 1 placeholder, got %d", len(result.Placeholders))
	}
	if result.Placeholders[0].QueryIndex != 0 {
		t.Errorf("QueryIndex = %d, expected 0", result.Placeholders[0].QueryIndex)
	}
}
