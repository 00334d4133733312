package taxonomy

import (
	"bufio"
	"bytes"
	"io"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// An Entry is a single taxon with its classification, as read from one line
// of input.
type Entry struct {
	Taxon          string
	Classification string

	// The line the entry was read from, starting at 1.
	Line int
}

// A Reader reads entries from classification input.
//
// Each line holds a taxon name and its classification, separated by the
// first run of white space:
//
//	yon  Trans-New Guinea, Ok-Awyu, Ok, Lowland
//	bhl  Trans-New Guinea, Ok-Awyu, Ok, Mountain
//
// Blank lines, leading and trailing whitespace are always ignored.
type Reader struct {
	// When set to true, the taxon and classification of every entry are
	// converted to Unicode normalization form C, so that names spelled
	// with combining characters match their precomposed equivalents.
	// This may be set at any time.
	Normalize bool
	buf       *bufio.Reader
	line      int
}

// NewReader returns a reader ready for reading entries from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		Normalize: false,
		buf:       bufio.NewReader(r),
		line:      1,
	}
}

// ReadAll will read all entries in the input and return them as a slice.
// If an error is encountered, processing is stopped, and the error is
// returned.
func (r *Reader) ReadAll() ([]Entry, error) {
	entries := make([]Entry, 0, 100)
	for {
		entry, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Read will read the next entry in the input. When there are no entries
// left, io.EOF is returned. A line without any white space results in a
// *ParseError.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (Entry, error) {
	for {
		line, err := r.buf.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				return Entry{}, io.EOF
			}
		} else if err != nil {
			return Entry{}, err
		}
		lineno := r.line
		r.line++

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if r.Normalize {
			line = norm.NFC.Bytes(line)
		}

		i := bytes.IndexFunc(line, unicode.IsSpace)
		if i < 0 {
			return Entry{}, &ParseError{Line: lineno, Text: string(line)}
		}
		return Entry{
			Taxon:          string(line[:i]),
			Classification: string(bytes.TrimSpace(line[i:])),
			Line:           lineno,
		}, nil
	}
}
