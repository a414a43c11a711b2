// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{
			name: "short string passes through",
			in:   "Jerusalem",
			max:  40,
			want: "Jerusalem",
		},
		{
			name: "long ascii truncated",
			in:   strings.Repeat("a", 50),
			max:  40,
			want: strings.Repeat("a", 37) + "...",
		},
		{
			name: "hebrew truncated on rune boundary",
			in:   strings.Repeat("ירושלים ", 10),
			max:  40,
			want: strings.Repeat("ירושלים ", 4) + "ירושל" + "...",
		},
		{
			name: "exact length untouched",
			in:   strings.Repeat("b", 40),
			max:  40,
			want: strings.Repeat("b", 40),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("result %q is not valid UTF-8", got)
			}
			if n := utf8.RuneCountInString(got); n > tt.max {
				t.Errorf("result has %d runes, want at most %d", n, tt.max)
			}
		})
	}
}
