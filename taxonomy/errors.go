package taxonomy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTaxon is returned when a taxon name contains a parenthesis.
	ErrInvalidTaxon = errors.New("invalid taxon")

	// ErrDuplicateEntry is returned when the same taxon and classification
	// are added twice.
	ErrDuplicateEntry = errors.New("duplicate taxon/classification")

	// ErrMalformedEntry is returned by AddAll for an entry that does not
	// have exactly two fields.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrParse is returned when an input line cannot be split into a taxon
	// and a classification.
	ErrParse = errors.New("malformed line")

	// ErrUnsupportedMode is returned for an output mode other than
	// "newick" or "nexus".
	ErrUnsupportedMode = errors.New("unknown output mode, use 'nexus' or 'newick'")

	// ErrDestinationExists is returned when the output file already exists.
	ErrDestinationExists = errors.New("file already exists")
)

// ParseError reports the input line that could not be read.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error on line %d: %s (need whitespace between "+
		"taxon and classification): %s", e.Line, ErrParse, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
