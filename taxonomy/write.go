package taxonomy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/SimonGreenhill/treemaker/newick"
	"github.com/SimonGreenhill/treemaker/nexus"
)

// Mode selects the output format.
type Mode string

const (
	// ModeNewick writes the bare tree, terminated by ';'.
	ModeNewick Mode = "newick"

	// ModeNexus writes the tree inside a NEXUS trees block.
	ModeNexus Mode = "nexus"
)

// ParseMode converts the name of an output format to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNewick, ModeNexus:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Serialize returns the tree as text in the format given by `mode`.
//
// The visibility of internal node labels is recomputed from the builder's
// visible set every time, so labels shown since the last call are picked up.
func (b *Builder) Serialize(mode Mode) (string, error) {
	switch mode {
	case ModeNewick:
		b.applyLabels()
		return newick.Format(b.root), nil
	case ModeNexus:
		b.applyLabels()
		return nexus.Format(b.root.Label, b.root), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
}

// Write writes the tree to `w` in the format given by `mode`, followed by
// a new line. Internal node labels are applied as for Serialize.
func (b *Builder) Write(w io.Writer, mode Mode) error {
	switch mode {
	case ModeNewick:
		b.applyLabels()
		return newick.NewWriter(w).WriteAll([]*newick.Tree{b.root})
	case ModeNexus:
		b.applyLabels()
		nw := nexus.NewWriter(w)
		if err := nw.Write(b.root.Label, b.root); err != nil {
			return err
		}
		return nw.Flush()
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
}

// WriteFile writes the tree to a new file at `path`. An existing file is
// never overwritten: ErrDestinationExists is returned instead.
func (b *Builder) WriteFile(path string, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	err := createFile(path, func(w io.Writer) error {
		return b.Write(w, mode)
	})
	if err != nil {
		return err
	}
	b.logger.Info("wrote tree", "path", path, "mode", string(mode),
		"taxa", b.Len())
	return nil
}

// createFile creates `path`, which must not exist yet, and fills it with
// `write`. If writing fails, the partial file is removed.
func createFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, path)
	} else if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f)
}
