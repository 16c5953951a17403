// Package langdetect guesses the language of fenced code block content.
// It backs the suggestion that no-fenced-code-language attaches to its
// message when a fence has no info string.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates limits the classifier to fence tags worth suggesting.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Suggest returns a lowercase fence tag for the given code content, or ""
// when nothing can be said with confidence. Callers should treat "" as
// "no suggestion", not as an error.
func Suggest(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := byPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// byPattern handles a few signatures the classifier is unreliable on for
// short snippets.
func byPattern(trimmed []byte) string {
	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return "go"
	}
	if bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(trimmed, []byte("\nRUN ")) {
		return "dockerfile"
	}
	if (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`)) {
		return "json"
	}
	lower := bytes.ToLower(trimmed)
	if bytes.Contains(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html")) {
		return "html"
	}
	return ""
}

func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
