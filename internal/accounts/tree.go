package accounts

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/dre/internal/model"
)

// noParent marks a root in Tree.parent.
const noParent = -1

// Tree is the chart of accounts indexed once: nodes live in an arena and are
// addressed by position; parent links given by ID or by name are normalized
// to positions when the tree is built.
type Tree struct {
	nodes    []model.AccountNode
	byKey    map[string]int
	parent   []int
	children [][]int
	roots    []int
	order    []int
}

// Build validates nodes and indexes them. The error lists every violated
// invariant.
func Build(nodes []model.AccountNode) (*Tree, error) {
	t, verrs := index(nodes)
	if len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid chart of accounts: %s", strings.Join(msgs, "; "))
	}
	return t, nil
}

// MustBuild is Build for charts known to be valid, such as DefaultChart.
func MustBuild(nodes []model.AccountNode) *Tree {
	t, err := Build(nodes)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at position i.
func (t *Tree) Node(i int) model.AccountNode { return t.nodes[i] }

// Lookup returns the position of the node with the given key.
func (t *Tree) Lookup(key string) (int, bool) {
	i, ok := t.byKey[key]
	return i, ok
}

// Parent returns the position of i's parent.
func (t *Tree) Parent(i int) (int, bool) {
	p := t.parent[i]
	return p, p != noParent
}

// Children returns the positions of i's direct children in declaration order.
func (t *Tree) Children(i int) []int { return t.children[i] }

// Roots returns the positions of the parentless nodes.
func (t *Tree) Roots() []int { return t.roots }

// Walk returns every position in pre-order: each root followed by its
// descendants, siblings in declaration order.
func (t *Tree) Walk() []int { return t.order }

// Leaves returns the positions of the direct-lookup nodes in pre-order.
func (t *Tree) Leaves() []int {
	var out []int
	for _, i := range t.order {
		if t.nodes[i].IsLeaf() {
			out = append(out, i)
		}
	}
	return out
}

// Nodes returns a copy of the node table in declaration order.
func (t *Tree) Nodes() []model.AccountNode {
	out := make([]model.AccountNode, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Depth returns the number of ancestors of i.
func (t *Tree) Depth(i int) int {
	d := 0
	for p, ok := t.Parent(i); ok; p, ok = t.Parent(p) {
		d++
	}
	return d
}
