package newick

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Reserved contains the characters that delimit structure in Newick output
// and therefore may not appear in a label.
const Reserved = "();"

// ErrInvalidLabel is returned when a label contains a reserved character.
var ErrInvalidLabel = errors.New("invalid label")

// Tree corresponds to any value representable in a Newick format. Each
// tree value corresponds to a single node.
//
// Children are kept in the order they were added. Sorting only happens on
// a copy when the tree is rendered.
type Tree struct {
	// All children of this node, which may be empty.
	Children []*Tree

	// The label of this node. If it's empty, then this node does
	// not have a name.
	Label string

	// When set, the label of an internal node with more than one child is
	// written after its closing parenthesis.
	ShowLabel bool
}

// ValidLabel returns an error wrapping ErrInvalidLabel if `label` contains
// one of the Reserved characters.
func ValidLabel(label string) error {
	if i := strings.IndexAny(label, Reserved); i >= 0 {
		return fmt.Errorf("%w: '%c' is not allowed in '%s'",
			ErrInvalidLabel, label[i], label)
	}
	return nil
}

// New returns a node labeled `label` with one leaf child for each of
// `children`. Every label is checked before anything is built.
func New(label string, children ...string) (*Tree, error) {
	if err := ValidLabel(label); err != nil {
		return nil, err
	}
	for _, c := range children {
		if err := ValidLabel(c); err != nil {
			return nil, err
		}
	}
	t := &Tree{Label: label}
	for _, c := range children {
		t.Children = append(t.Children, &Tree{Label: c})
	}
	return t, nil
}

// Add creates a new node (with optional leaf children) and appends it to
// this node's children. The new node is returned.
func (t *Tree) Add(label string, children ...string) (*Tree, error) {
	child, err := New(label, children...)
	if err != nil {
		return nil, err
	}
	return t.AddTree(child), nil
}

// AddTree appends an existing node to this node's children and returns it.
func (t *Tree) AddTree(child *Tree) *Tree {
	t.Children = append(t.Children, child)
	return child
}

// Find searches the descendants of this node for one labeled `label`.
// Each child is compared before its own subtree is searched, so a match
// closer to the front of the child list wins over a deeper one found later.
// nil is returned if no such node exists.
func (t *Tree) Find(label string) *Tree {
	return find(t, label)
}

func find(node *Tree, label string) *Tree {
	for _, child := range node.Children {
		if child.Label == label {
			return child
		}
		if found := find(child, label); found != nil {
			return found
		}
	}
	return nil
}

// GetOrCreate returns the descendant labeled `label` as found by Find. If
// there is none, a new child is appended to this node and returned.
//
// N.B. Since only the descendants of this node are searched, the same label
// in two different branches yields two distinct nodes. They are never merged.
func (t *Tree) GetOrCreate(label string) (*Tree, error) {
	if found := t.Find(label); found != nil {
		return found, nil
	}
	return t.Add(label)
}

// IsLeaf returns true if this node has no children.
func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// IsInternal returns true if this node has at least one child.
func (t *Tree) IsInternal() bool {
	return len(t.Children) > 0
}

// Leaves returns every leaf below this node, left to right, in the order
// the children were added.
func (t *Tree) Leaves() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		leaves(t, yield)
	}
}

func leaves(node *Tree, yield func(*Tree) bool) bool {
	for _, child := range node.Children {
		if child.IsInternal() {
			if !leaves(child, yield) {
				return false
			}
			continue
		}
		if !yield(child) {
			return false
		}
	}
	return true
}

// Walk calls fn for this node and then for each of its descendants in
// pre-order.
func (t *Tree) Walk(fn func(*Tree)) {
	fn(t)
	for _, child := range t.Children {
		child.Walk(fn)
	}
}

// String returns the Newick rendering of the subtree rooted at this node,
// without the terminating ';'.
//
// Children are ordered by their labels. A node with a single child is
// collapsed into that child.
func (t *Tree) String() string {
	buf := new(strings.Builder)
	t.render(buf)
	return buf.String()
}

func (t *Tree) render(buf *strings.Builder) {
	switch len(t.Children) {
	case 0:
		buf.WriteString(t.Label)
		return
	case 1:
		t.Children[0].render(buf)
		return
	}

	sorted := make([]*Tree, len(t.Children))
	copy(sorted, t.Children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Label < sorted[j].Label
	})

	buf.WriteByte('(')
	for i, child := range sorted {
		if i > 0 {
			buf.WriteByte(',')
		}
		child.render(buf)
	}
	buf.WriteByte(')')
	if t.ShowLabel {
		buf.WriteString(t.Label)
	}
}
