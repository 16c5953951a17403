package langdetect

import "testing"

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \n\t\n", ""},
		{"go package", "package main\n\nfunc main() {}\n", "go"},
		{"shebang bash", "#!/bin/bash\necho hi\n", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hi')\n", "python"},
		{"json object", "{\n  \"name\": \"x\"\n}\n", "json"},
		{"html doc", "<!DOCTYPE html>\n<html></html>\n", "html"},
		{"dockerfile", "FROM alpine:3.20\nRUN apk add curl\n", "dockerfile"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Suggest([]byte(tt.content)); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestSuggest_UnknownNeverPanics(t *testing.T) {
	t.Parallel()

	// Arbitrary prose must never panic; any classifier answer is accepted
	// as long as it is normalized to lowercase.
	got := Suggest([]byte("the quick brown fox jumps over the lazy dog"))
	for _, r := range got {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("Suggest returned non-normalized tag %q", got)
		}
	}
}
