package newick

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, label string, children ...string) *Tree {
	t.Helper()
	tree, err := New(label, children...)
	require.NoError(t, err)
	return tree
}

func mustAdd(t *testing.T, parent *Tree, label string, children ...string) *Tree {
	t.Helper()
	child, err := parent.Add(label, children...)
	require.NoError(t, err)
	return child
}

func TestEmptyTree(t *testing.T) {
	assert.Equal(t, "", (&Tree{}).String())
}

func TestSingleton(t *testing.T) {
	assert.Equal(t, "root", mustNew(t, "root").String())
}

func TestSimple(t *testing.T) {
	assert.Equal(t, "(A,B,C)", mustNew(t, "root", "A", "B", "C").String())
}

func TestAdd(t *testing.T) {
	tree := mustNew(t, "root", "A", "B")
	mustAdd(t, tree, "C")
	assert.Equal(t, "(A,B,C)", tree.String())
}

func TestSortedByLabel(t *testing.T) {
	tree := mustNew(t, "root", "b", "a")
	assert.Equal(t, "(a,b)", tree.String())

	// The stored order is untouched.
	assert.Equal(t, "b", tree.Children[0].Label)
	assert.Equal(t, "a", tree.Children[1].Label)
}

func TestSortKeyIsLabel(t *testing.T) {
	tree := mustNew(t, "root")
	mustAdd(t, tree, "y", "a1", "a2")
	mustAdd(t, tree, "x", "z1", "z2")

	// "x" sorts before "y" even though its rendering starts with "(z".
	assert.Equal(t, "((z1,z2),(a1,a2))", tree.String())
}

func TestSingleChildCollapsed(t *testing.T) {
	tree := mustNew(t, "root")
	only := mustAdd(t, tree, "only", "a", "b")
	only.ShowLabel = true
	tree.ShowLabel = true
	assert.Equal(t, only.String(), tree.String())
	assert.Equal(t, "(a,b)only", tree.String())
}

func TestSanitise(t *testing.T) {
	for _, tc := range []struct {
		label    string
		children []string
	}{
		{"a;", []string{"A", "B"}},
		{"a", []string{"A(", "B"}},
		{"a", []string{"A", "B)"}},
	} {
		_, err := New(tc.label, tc.children...)
		assert.ErrorIs(t, err, ErrInvalidLabel, "label %q children %v",
			tc.label, tc.children)
	}
}

func TestAddInvalidDoesNotMutate(t *testing.T) {
	tree := mustNew(t, "root", "A")
	_, err := tree.Add("B;")
	require.ErrorIs(t, err, ErrInvalidLabel)
	_, err = tree.Add("B", "b1", "b(2")
	require.ErrorIs(t, err, ErrInvalidLabel)
	assert.Len(t, tree.Children, 1)
}

func TestRecursiveAdd(t *testing.T) {
	tree := mustNew(t, "root", "A", "B")
	mustAdd(t, tree.Find("B"), "sub", "b1", "b2")
	assert.Equal(t, "(A,(b1,b2))", tree.String())
}

func TestFind(t *testing.T) {
	tree := mustNew(t, "root", "A", "B", "C")
	c := tree.Find("C")
	require.NotNil(t, c)
	mustAdd(t, c, "c1")
	mustAdd(t, c, "c2")
	mustAdd(t, tree.Find("B"), "b1")
	assert.Equal(t, "(A,b1,(c1,c2))", tree.String())

	// From different depths.
	assert.Equal(t, "c1", tree.Find("c1").Label)
	assert.Equal(t, "c1", c.Find("c1").Label)
	assert.Nil(t, tree.Find("missing"))
}

func TestFindShallowFirst(t *testing.T) {
	tree := mustNew(t, "root")
	a := mustAdd(t, tree, "a")
	deep := mustAdd(t, a, "x")
	shallow := mustAdd(t, tree, "x")

	// The first child's subtree is searched before later siblings.
	assert.Same(t, deep, tree.Find("x"))
	assert.NotSame(t, shallow, tree.Find("x"))
}

func TestGetOrCreate(t *testing.T) {
	tree := mustNew(t, "root", "A", "B")
	c, err := tree.GetOrCreate("C")
	require.NoError(t, err)
	_, err = c.GetOrCreate("c1")
	require.NoError(t, err)
	_, err = c.GetOrCreate("c2")
	require.NoError(t, err)
	mustAdd(t, tree.Find("B"), "b1")
	assert.Equal(t, "(A,b1,(c1,c2))", tree.String())

	again, err := tree.GetOrCreate("C")
	require.NoError(t, err)
	assert.Same(t, c, again)

	_, err = tree.GetOrCreate("C)")
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestConflicts(t *testing.T) {
	tree := mustNew(t, "root", "A", "B")
	mustAdd(t, tree.Find("A"), "sub", "b1", "b2")
	mustAdd(t, tree.Find("B"), "sub", "b1", "b2")
	assert.Equal(t, "((b1,b2),(b1,b2))", tree.String())
}

func TestIsLeaf(t *testing.T) {
	tree := mustNew(t, "root", "A", "B")
	mustAdd(t, tree.Find("B"), "sub", "b1", "b2")

	assert.True(t, tree.Find("A").IsLeaf())
	assert.False(t, tree.Find("B").IsLeaf())
	assert.True(t, tree.Find("b1").IsLeaf())
	assert.True(t, tree.Find("b2").IsLeaf())

	assert.False(t, tree.Find("A").IsInternal())
	assert.True(t, tree.Find("B").IsInternal())
	assert.False(t, tree.Find("b1").IsInternal())

	empty := mustNew(t, "")
	assert.True(t, empty.IsLeaf())
	assert.False(t, empty.IsInternal())
}

func TestLeaves(t *testing.T) {
	tree := mustNew(t, "root", "B", "A")
	mustAdd(t, tree.Find("B"), "sub", "b2", "b1")

	var got []string
	for leaf := range tree.Leaves() {
		got = append(got, leaf.Label)
	}
	assert.Equal(t, []string{"b2", "b1", "A"}, got)

	// Restartable, and stops early when asked.
	var first string
	for leaf := range tree.Leaves() {
		first = leaf.Label
		break
	}
	assert.Equal(t, "b2", first)
}

func TestExample(t *testing.T) {
	tree := mustNew(t, "root")
	a := mustAdd(t, tree, "family a")
	mustAdd(t, mustAdd(t, a, "subgroup 1"), "A1")
	mustAdd(t, mustAdd(t, a, "subgroup 2"), "A2")

	b := mustAdd(t, tree, "family b")
	b1 := mustAdd(t, b, "subgroup 1")
	mustAdd(t, b1, "B1a")
	mustAdd(t, b1, "B1b")
	mustAdd(t, mustAdd(t, b, "subgroup 2"), "B2")

	assert.Equal(t, "((A1,A2),((B1a,B1b),B2))", tree.String())

	tree.Walk(func(n *Tree) { n.ShowLabel = true })
	assert.Equal(t,
		"((A1,A2)family a,((B1a,B1b)subgroup 1,B2)family b)root",
		tree.String())
}

func TestReal(t *testing.T) {
	// yon  Trans-New Guinea, Ok-Awyu, Ok, Lowland
	// bhl  Trans-New Guinea, Ok-Awyu, Ok, Mountain
	// fai  Trans-New Guinea, Ok-Awyu, Ok, Mountain
	// yir  Trans-New Guinea, Ok-Awyu, Awyu-Dumut, Awyu
	// aax  Trans-New Guinea, Ok-Awyu, Awyu-Dumut, Dumut
	// bwp  Trans-New Guinea, Ok-Awyu, Awyu-Dumut, Dumut
	tree := mustNew(t, "Ok-Awyu")

	ok := mustAdd(t, tree, "Ok", "Mountain", "Lowland")
	mustAdd(t, ok.Find("Lowland"), "yon")
	mustAdd(t, ok.Find("Mountain"), "bhl")
	mustAdd(t, ok.Find("Mountain"), "fai")

	ad := mustAdd(t, tree, "Awyu-Dumut", "Awyu", "Dumut")
	mustAdd(t, ad.Find("Awyu"), "yir")
	mustAdd(t, ad.Find("Dumut"), "aax")
	mustAdd(t, ad.Find("Dumut"), "bwp")

	assert.Equal(t, "((yir,(aax,bwp)),(yon,(bhl,fai)))", tree.String())

	tree.Walk(func(n *Tree) { n.ShowLabel = true })
	assert.Equal(t,
		"((yir,(aax,bwp)Dumut)Awyu-Dumut,(yon,(bhl,fai)Mountain)Ok)Ok-Awyu",
		tree.String())
}

func TestDeepTree(t *testing.T) {
	tree := mustNew(t, "root")
	taxon := tree
	for i := 0; i < 10; i++ {
		s := strconv.Itoa(i)
		taxon = mustAdd(t, taxon, s, s)
	}
	assert.Equal(t, "(0,(1,(2,(3,(4,(5,(6,(7,(8,9)))))))))", tree.String())

	tree.Walk(func(n *Tree) { n.ShowLabel = true })
	assert.Equal(t, "(0,(1,(2,(3,(4,(5,(6,(7,(8,9)8)7)6)5)4)3)2)1)0",
		tree.String())
}

func TestIdempotent(t *testing.T) {
	tree := mustNew(t, "root", "c", "a", "b")
	mustAdd(t, tree.Find("a"), "sub", "a2", "a1")
	first := tree.String()
	assert.Equal(t, first, tree.String())
}

func TestWriter(t *testing.T) {
	one := mustNew(t, "root", "B", "A")
	two := mustNew(t, "root", "C")

	buf := new(bytes.Buffer)
	require.NoError(t, NewWriter(buf).WriteAll([]*Tree{one, two}))
	assert.Equal(t, "(A,B);\nC;\n", buf.String())
	assert.Equal(t, "(A,B);", Format(one))
}
