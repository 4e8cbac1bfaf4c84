// Package output frames emitted statements in their file envelopes and writes
// them to the three artifact files.
package output

import (
	"fmt"
	"strings"

	"github.com/vk/iomapper/internal/emit"
)

// GeneratedMarker precedes the generated variable block.
const GeneratedMarker = "(*SCRIPT GENERATED VARIABLES*)"

// generatedTrailer closes the generated variable block.
const generatedTrailer = "(***************************)"

// LineEnding is the newline sequence used in written files.
type LineEnding string

const (
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// ParseLineEnding accepts "lf" or "crlf", case-insensitively.
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(s) {
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	}
	return "", fmt.Errorf("invalid line ending %q: must be 'lf' or 'crlf'", s)
}

// Document is one envelope: opener lines, body, closer lines.
type Document struct {
	Opener []string
	Body   []string
	Closer []string
}

// Render joins the three parts, terminating every line with le.
func (d Document) Render(le LineEnding) string {
	var sb strings.Builder
	for _, part := range [][]string{d.Opener, d.Body, d.Closer} {
		for _, line := range part {
			sb.WriteString(line)
			sb.WriteString(string(le))
		}
	}
	return sb.String()
}

// TypeDocument wraps record declarations in TYPE ... END_TYPE.
func TypeDocument(records []string) Document {
	return Document{
		Opener: []string{"TYPE"},
		Body:   records,
		Closer: []string{"END_TYPE"},
	}
}

// VariableDocument wraps variable declarations in a marked VAR ... END_VAR.
func VariableDocument(decls []string) Document {
	return Document{
		Opener: []string{GeneratedMarker, "VAR"},
		Body:   decls,
		Closer: []string{"END_VAR", generatedTrailer},
	}
}

// MappingDocuments returns one VAR_CONFIG ... END_VAR envelope per block.
func MappingDocuments(blocks []emit.MappingBlock) []Document {
	docs := make([]Document, len(blocks))
	for i, b := range blocks {
		docs[i] = Document{
			Opener: []string{"VAR_CONFIG"},
			Body:   b.Lines(),
			Closer: []string{"END_VAR"},
		}
	}
	return docs
}
