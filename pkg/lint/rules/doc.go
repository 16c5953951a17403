// Package rules provides the built-in style rules for mdstyle.
//
// Each rule is declared as a lint.Descriptor whose factory builds a
// fresh analyzer per file. Analyzers are fed nodes from a single tree
// traversal and report their violations in Finalize.
//
// # Rule Catalog
//
//   - Headings:
//     MD001 heading-increment, MD003 heading-style,
//     MD019 no-multiple-space-atx, MD024 no-duplicate-heading,
//     MD025 single-h1, MD041 first-line-heading
//
//   - Lists:
//     MD004 ul-style, MD005 list-indent, MD029 ol-prefix
//
//   - Whitespace:
//     MD009 no-trailing-spaces, MD010 no-hard-tabs,
//     MD012 no-multiple-blanks, MD047 single-trailing-newline
//
//   - Line length:
//     MD013 line-length
//
//   - Links:
//     MD011 no-reversed-links
//
//   - Code blocks:
//     MD040 fenced-code-language, MD048 code-fence-style
//
//   - Emphasis:
//     MD049 emphasis-style, MD050 strong-style
//
//   - Horizontal rules:
//     MD035 hr-style
//
// Rule IDs follow the markdownlint MDxxx convention for compatibility.
//
// # Registration
//
// RegisterAll wires every built-in rule into a lint.Registry; the
// registration order above is also the order violations are reported in.
package rules
