package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/iomapper/internal/ctxlog"
)

// Mode selects how a target file is opened.
type Mode int

const (
	// Overwrite replaces any prior content.
	Overwrite Mode = iota
	// Append adds to existing content. Resetting the file between runs is
	// the caller's job.
	Append
)

func (m Mode) String() string {
	if m == Append {
		return "append"
	}
	return "overwrite"
}

func (m Mode) flags() int {
	if m == Append {
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
}

// Writer writes rendered documents to disk.
type Writer struct {
	LineEnding LineEnding
}

// NewWriter returns a Writer using the given line ending.
func NewWriter(le LineEnding) *Writer {
	return &Writer{LineEnding: le}
}

// Write renders docs in order and writes them to path with a single write
// call. The parent directory must exist.
func (w *Writer) Write(ctx context.Context, path string, mode Mode, docs ...Document) error {
	logger := ctxlog.FromContext(ctx)

	var sb strings.Builder
	for _, d := range docs {
		sb.WriteString(d.Render(w.LineEnding))
	}

	f, err := os.OpenFile(filepath.Clean(path), mode.flags(), 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Debug("Output file written.", "path", path, "mode", mode.String(), "documents", len(docs), "bytes", sb.Len())
	return nil
}
