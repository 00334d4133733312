package newick

import (
	"bufio"
	"io"
)

// A Writer writes trees in the Newick format. Each tree is terminated by
// a ';' and followed by a new line.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter creates a new Newick writer that can write trees to an
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		buf: bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single tree to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(tree *Tree) error {
	if _, err := w.buf.WriteString(Format(tree)); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// WriteAll writes a slice of trees to the underlying io.Writer, and calls
// Flush.
func (w *Writer) WriteAll(trees []*Tree) error {
	for _, tree := range trees {
		if err := w.Write(tree); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Format returns the complete Newick string for `tree`, including the
// terminating ';'.
func Format(tree *Tree) string {
	return tree.String() + ";"
}
