// Package parser implements the sheet-level parsing primitives for coverage
// extraction: cell classification, header resolution, and row extraction.
package parser

import "strings"

// CellKind classifies a raw cell value.
type CellKind int

const (
	// CellEmpty means the value is missing or whitespace only.
	CellEmpty CellKind = iota
	// CellPlaceholder means the value signifies "not yet assigned".
	CellPlaceholder
	// CellNames means the value holds one or more personnel names.
	CellNames
)

// Classification is the result of classifying one cell.
type Classification struct {
	// Kind is the cell kind.
	Kind CellKind
	// Names holds the individual names for CellNames cells, already trimmed
	// and with placeholder pieces dropped. May be empty if every piece of a
	// composite value turned out to be a placeholder.
	Names []string
}

// Classifier decides whether a cell is empty, a placeholder, or holds names,
// and splits composite cells into individual names.
type Classifier struct {
	placeholders map[string]struct{}
}

// NewClassifier creates a Classifier with the given placeholder values.
// Matching is case-insensitive against trimmed cell values; runs of one or
// more hyphens are always placeholders.
func NewClassifier(placeholders []string) *Classifier {
	set := make(map[string]struct{}, len(placeholders))
	for _, p := range placeholders {
		set[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return &Classifier{placeholders: set}
}

// Classify classifies a single raw cell value.
func (c *Classifier) Classify(raw string) Classification {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Classification{Kind: CellEmpty}
	}
	if c.isPlaceholder(v) {
		return Classification{Kind: CellPlaceholder}
	}
	return Classification{Kind: CellNames, Names: c.splitNames(v)}
}

// isPlaceholder reports whether a trimmed value is a placeholder.
func (c *Classifier) isPlaceholder(v string) bool {
	if isHyphenRun(v) {
		return true
	}
	_, ok := c.placeholders[strings.ToLower(v)]
	return ok
}

// splitNames splits a composite cell into individual names. Comma takes
// precedence over slash; a piece that still contains a slash after a comma
// split is kept whole rather than split again.
func (c *Classifier) splitNames(v string) []string {
	var pieces []string
	switch {
	case strings.Contains(v, ","):
		pieces = strings.Split(v, ",")
	case strings.Contains(v, "/"):
		pieces = strings.Split(v, "/")
	default:
		pieces = []string{v}
	}

	names := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" || c.isPlaceholder(p) {
			continue
		}
		names = append(names, p)
	}
	return names
}

// isHyphenRun reports whether v consists solely of one or more hyphens.
func isHyphenRun(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r != '-' {
			return false
		}
	}
	return true
}
