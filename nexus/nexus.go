package nexus

import (
	"bufio"
	"fmt"
	"io"

	"github.com/SimonGreenhill/treemaker/newick"
)

// DefaultLabel is the tree name used when no label is given.
const DefaultLabel = "tree"

const template = "#NEXUS\n\nbegin trees;\n   tree %s = %s\nend;\n"

// Format returns the NEXUS document holding `tree` under the name `label`.
// An empty label is replaced with DefaultLabel.
func Format(label string, tree *newick.Tree) string {
	if len(label) == 0 {
		label = DefaultLabel
	}
	return fmt.Sprintf(template, label, tree.String())
}

// A Writer writes NEXUS documents to an io.Writer.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter creates a new NEXUS writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		buf: bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single document for `tree` to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(label string, tree *newick.Tree) error {
	_, err := w.buf.WriteString(Format(label, tree))
	return err
}
