// Package jpath implements the JPath addressing language: a simplified,
// JSONPath-like notation for reaching into a tree of maps, slices and
// scalars using dot-delimited names with an optional bracketed index.
package jpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// reChunk matches a single JPath chunk: a name made of letters, digits and
// underscore, with an optional bracketed index that is '#', '*' or a
// 1-based integer.
var reChunk = regexp.MustCompile(`^([A-Za-z0-9_]+)(\[(#|\*|[0-9]+)\])?$`)

// IndexKind distinguishes the three bracketed-index forms a chunk may carry.
type IndexKind int

const (
	// IndexNone means no bracket was present at all.
	IndexNone IndexKind = iota
	// IndexAll is '[*]'.
	IndexAll
	// IndexLast is '[#]'.
	IndexLast
	// IndexAt is '[n]', a concrete 0-based position in Value.
	IndexAt
)

// Chunk is one dot-delimited segment of a parsed JPath.
type Chunk struct {
	Raw   string    // the original text of this chunk, e.g. "Source[1]"
	Path  string    // breadcrumb: this chunk joined with every chunk before it
	Name  string    // the bare node name, brackets stripped
	Index IndexKind // IndexNone unless a bracket was present
	Value int       // valid only when Index == IndexAt; 0-based position
}

// HasIndex reports whether this chunk carried any bracketed index at all
// (including '[*]' and '[#]').
func (c Chunk) HasIndex() bool {
	return c.Index != IndexNone
}

// Path is a fully parsed JPath: an ordered list of Chunks.
type Path []Chunk

// SyntaxError reports a JPath chunk that did not match the grammar.
type SyntaxError struct {
	Chunk    string
	Position int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JPath chunk %q at position %d", e.Chunk, e.Position)
}

// Parse splits a raw JPath string into Chunks. It performs no caching; most
// callers should use ParseCached instead.
func Parse(raw string) (Path, error) {
	parts := strings.Split(raw, ".")
	result := make(Path, 0, len(parts))
	breadcrumbs := make([]string, 0, len(parts))

	for i, part := range parts {
		m := reChunk.FindStringSubmatch(part)
		if m == nil {
			return nil, &SyntaxError{Chunk: part, Position: i}
		}

		breadcrumbs = append(breadcrumbs, part)
		chunk := Chunk{
			Raw:  part,
			Path: strings.Join(breadcrumbs, "."),
			Name: m[1],
		}

		if m[2] != "" {
			switch m[3] {
			case "#":
				chunk.Index = IndexLast
			case "*":
				chunk.Index = IndexAll
			default:
				n, err := strconv.Atoi(m[3])
				if err != nil {
					return nil, &SyntaxError{Chunk: part, Position: i}
				}
				chunk.Index = IndexAt
				chunk.Value = n - 1
			}
		}

		result = append(result, chunk)
	}

	return result, nil
}
