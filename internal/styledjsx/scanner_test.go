// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import "testing"

func TestScanCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"plain js", "const a = 1;\nfunction f() { return a; }\n", 0},
		{"css tag", "const s = css`.a { color: red; }`;", 1},
		{"css global tag", "css.global`body { margin: 0 }`", 1},
		{"css resolve tag", "css.resolve`.b {}`", 1},
		{"css tag with space", "css `.a {}`", 1},
		{"style jsx element", "<style jsx>{`.a {}`}</style>", 1},
		{"style jsx global", "<style jsx global>{`.a {}`}</style>", 1},
		{"style global jsx", "<style global jsx>{`.a {}`}</style>", 1},
		{"two templates", "css`.a{}`;\ncss`.b{}`;", 2},
		{"style without jsx", "<style>{`.a {}`}</style>", 0},
		{"unrelated backtick", "const s = `hello`;", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanCandidates(tt.text)
			if len(got) != tt.want {
				t.Errorf("ScanCandidates(%q) = %v, want %d offsets", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanCandidates_OffsetsAscendAndPointPastMatch(t *testing.T) {
	text := "css`.a{}`; const x = 1; css.global`.b{}`;"
	offsets := ScanCandidates(text)
	if len(offsets) != 2 {
		t.Fatalf("got %d offsets, want 2", len(offsets))
	}
	if offsets[0] >= offsets[1] {
		t.Errorf("offsets not ascending: %v", offsets)
	}
	// Each offset is just past the opening backtick of its match.
	for _, off := range offsets {
		if off <= 0 || off > len(text) || text[off-1] != '`' {
			t.Errorf("offset %d does not sit just past a backtick", off)
		}
	}
}

// Repeated scans over the same shared pattern must not influence each
// other: the matcher keeps no cursor between calls.
func TestScanCandidates_StatelessAcrossCalls(t *testing.T) {
	text := "css`.a{}`; css`.b{}`;"
	first := ScanCandidates(text)
	second := ScanCandidates(text)
	if len(first) != len(second) {
		t.Fatalf("scan not stable: %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("scan not stable: %v then %v", first, second)
		}
	}
}
