package taxonomy

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SimonGreenhill/treemaker/internal/logging"
	"github.com/SimonGreenhill/treemaker/newick"
)

// DefaultRootLabel is the label given to the root of a new Builder.
const DefaultRootLabel = "root"

// A Parser splits a classification string into group names, most
// inclusive first.
type Parser func(classification string) []string

// ParseClassification is the default Parser. It splits on ',' and trims
// the white space around each group. A blank classification yields a
// single empty group.
func ParseClassification(classification string) []string {
	groups := strings.Split(strings.TrimSpace(classification), ",")
	for i := range groups {
		groups[i] = strings.TrimSpace(groups[i])
	}
	return groups
}

type entry struct {
	leaf, classification string
}

// Builder incrementally builds a classification tree. The zero value is not
// usable; create one with New.
type Builder struct {
	root   *newick.Tree
	label  string
	parse  Parser
	labels bool
	logger *slog.Logger

	// Every (taxon, classification) pair accepted so far.
	seen map[entry]struct{}

	// Labels of internal nodes that are written in the output.
	visible map[string]bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithRootLabel sets the label of the root node. It is subject to the same
// rules as every other label.
func WithRootLabel(label string) Option {
	return func(b *Builder) {
		b.label = label
	}
}

// WithNodeLabels makes every group seen in a classification visible as an
// internal node label in the output.
func WithNodeLabels(show bool) Option {
	return func(b *Builder) {
		b.labels = show
	}
}

// WithParser replaces ParseClassification for classifications that use a
// different schema.
func WithParser(p Parser) Option {
	return func(b *Builder) {
		b.parse = p
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New returns a Builder holding a tree with a single root node. An error
// wrapping newick.ErrInvalidLabel is returned if the root label contains a
// reserved character.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		label:   DefaultRootLabel,
		parse:   ParseClassification,
		logger:  logging.NewNop(),
		seen:    make(map[entry]struct{}),
		visible: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	root, err := newick.New(b.label)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	b.root = root
	return b, nil
}

// Tree returns the root of the tree built so far.
func (b *Builder) Tree() *newick.Tree {
	return b.root
}

// Len returns the number of taxa added.
func (b *Builder) Len() int {
	return len(b.seen)
}

// Show marks internal nodes with any of the given labels as visible in the
// output.
func (b *Builder) Show(labels ...string) {
	for _, label := range labels {
		b.visible[label] = true
	}
}

// Add places `leaf` in the tree at the location given by `classification`
// and returns the root.
//
// Each group is looked up with GetOrCreate starting from the node of the
// previous group, so groups are only merged along the same line of descent.
// On error, the tree is not modified.
func (b *Builder) Add(leaf, classification string) (*newick.Tree, error) {
	if strings.ContainsAny(leaf, "()") {
		return nil, fmt.Errorf("%w: '%s' may not contain '(' or ')'",
			ErrInvalidTaxon, leaf)
	}
	key := entry{leaf, classification}
	if _, ok := b.seen[key]; ok {
		return nil, fmt.Errorf("%w: %s %s",
			ErrDuplicateEntry, leaf, classification)
	}

	groups := b.parse(classification)
	if err := newick.ValidLabel(leaf); err != nil {
		return nil, err
	}
	for _, group := range groups {
		if err := newick.ValidLabel(group); err != nil {
			return nil, err
		}
	}

	parent := b.root
	for _, group := range groups {
		node, err := parent.GetOrCreate(group)
		if err != nil {
			return nil, err
		}
		parent = node
	}
	if _, err := parent.Add(leaf); err != nil {
		return nil, err
	}

	b.seen[key] = struct{}{}
	if b.labels {
		b.Show(groups...)
	}
	b.logger.Debug("added taxon",
		"taxon", leaf, "classification", classification, "parent", parent.Label)
	return b.root, nil
}

// AddAll adds every entry in order. Each entry must hold exactly two
// values: the taxon and its classification.
//
// Adding stops at the first bad entry. Entries before it stay in the tree.
func (b *Builder) AddAll(entries [][]string) (*newick.Tree, error) {
	for i, row := range entries {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d fields, expected 2",
				ErrMalformedEntry, i+1, len(row))
		}
		if _, err := b.Add(row[0], row[1]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return b.root, nil
}

// Read adds every entry from `r`, which must be in the format described by
// Reader.
func (b *Builder) Read(r *Reader) error {
	for {
		e, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := b.Add(e.Taxon, e.Classification); err != nil {
			return fmt.Errorf("Error on line %d: %w", e.Line, err)
		}
	}
}

// applyLabels sets ShowLabel on every node from the visible set.
func (b *Builder) applyLabels() {
	b.root.Walk(func(node *newick.Tree) {
		node.ShowLabel = b.visible[node.Label]
	})
}
