package accounts

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/dre/internal/model"
)

// ValidationError describes a single invariant violation in a chart.
type ValidationError struct {
	Invariant   int
	Node        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Node, e.Description)
}

// Validate checks the invariants of a chart of accounts:
//
//  1. every node has an ID or a name
//  2. keys are unique
//  3. levels are 1-3
//  4. parent references resolve to exactly one other node
//  5. composite formula operands exist
//  6. leaf names are unique (they are the ledger join key)
//  7. no cycles through parent links or formula dependencies
func Validate(nodes []model.AccountNode) []ValidationError {
	_, errs := index(nodes)
	return errs
}

func index(nodes []model.AccountNode) (*Tree, []ValidationError) {
	var errs []ValidationError

	t := &Tree{
		nodes:    append([]model.AccountNode(nil), nodes...),
		byKey:    make(map[string]int, len(nodes)),
		parent:   make([]int, len(nodes)),
		children: make([][]int, len(nodes)),
	}

	byName := make(map[string][]int)
	for i, n := range t.nodes {
		t.nodes[i].ID = strings.TrimSpace(n.ID)
		t.nodes[i].Name = strings.TrimSpace(n.Name)
		t.nodes[i].Parent = strings.TrimSpace(n.Parent)
		n = t.nodes[i]

		// Invariant 1: identity.
		if n.Key() == "" {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Node:        fmt.Sprintf("row %d", i+1),
				Description: "node has neither id nor name",
			})
			continue
		}

		// Invariant 2: unique keys.
		if prev, dup := t.byKey[n.Key()]; dup {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Node:        n.Key(),
				Description: fmt.Sprintf("duplicate key (rows %d and %d)", prev+1, i+1),
			})
		} else {
			t.byKey[n.Key()] = i
		}
		if n.Name != "" {
			byName[n.Name] = append(byName[n.Name], i)
		}

		// Invariant 3: level range.
		if n.Level < 1 || n.Level > 3 {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Node:        n.Key(),
				Description: fmt.Sprintf("level %d outside 1-3", n.Level),
			})
		}
	}

	// Invariant 4: parent links, by key first and then by name.
	for i, n := range t.nodes {
		t.parent[i] = noParent
		if n.Parent == "" || n.Key() == "" {
			continue
		}
		p, ok := t.byKey[n.Parent]
		if !ok {
			switch named := byName[n.Parent]; len(named) {
			case 0:
			case 1:
				p, ok = named[0], true
			default:
				errs = append(errs, ValidationError{
					Invariant:   4,
					Node:        n.Key(),
					Description: fmt.Sprintf("parent %q matches %d nodes by name", n.Parent, len(named)),
				})
				continue
			}
		}
		if !ok {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Node:        n.Key(),
				Description: fmt.Sprintf("unknown parent %q", n.Parent),
			})
			continue
		}
		if p == i {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Node:        n.Key(),
				Description: "node is its own parent",
			})
			continue
		}
		t.parent[i] = p
		t.children[p] = append(t.children[p], i)
	}

	// Invariant 5: composite operands.
	for _, n := range t.nodes {
		ops, ok := n.Formula.Operands()
		if !ok {
			continue
		}
		for _, ref := range []string{ops.Minuend, ops.Subtrahend} {
			if _, found := t.byKey[ref]; !found {
				errs = append(errs, ValidationError{
					Invariant:   5,
					Node:        n.Key(),
					Description: fmt.Sprintf("formula %s references unknown node %q", n.Formula, ref),
				})
			}
		}
	}

	// Invariant 6: unique leaf names.
	leafNames := make(map[string]string)
	for _, n := range t.nodes {
		if !n.IsLeaf() || n.Name == "" {
			continue
		}
		if first, dup := leafNames[n.Name]; dup {
			errs = append(errs, ValidationError{
				Invariant:   6,
				Node:        n.Key(),
				Description: fmt.Sprintf("leaf name %q already used by %s", n.Name, first),
			})
			continue
		}
		leafNames[n.Name] = n.Key()
	}

	// Invariant 7: acyclic parent chains and formula dependencies.
	if cyc := t.findCycle(); cyc != "" {
		errs = append(errs, ValidationError{
			Invariant:   7,
			Node:        cyc,
			Description: "cycle through parent links or formula operands",
		})
		return t, errs
	}

	for i := range t.nodes {
		if t.parent[i] == noParent && t.nodes[i].Key() != "" {
			t.roots = append(t.roots, i)
		}
	}
	for _, r := range t.roots {
		t.order = t.appendPreOrder(t.order, r)
	}
	return t, errs
}

func (t *Tree) appendPreOrder(out []int, i int) []int {
	out = append(out, i)
	for _, c := range t.children[i] {
		out = t.appendPreOrder(out, c)
	}
	return out
}

// findCycle returns the key of a node on a cycle, or "" when there is none.
// Parent chains are checked first, then value dependencies: children for sum
// nodes and operands for composites.
func (t *Tree) findCycle() string {
	if key := t.cycleIn(t.parentOf); key != "" {
		return key
	}
	return t.cycleIn(t.valueDependencies)
}

func (t *Tree) parentOf(i int) []int {
	if p := t.parent[i]; p != noParent {
		return []int{p}
	}
	return nil
}

// valueDependencies returns what i's value is computed from: children for
// sum nodes, operands for composites.
func (t *Tree) valueDependencies(i int) []int {
	switch f := t.nodes[i].Formula; {
	case f == model.FormulaSum:
		return t.children[i]
	case f.Composite():
		ops, _ := f.Operands()
		var deps []int
		for _, ref := range []string{ops.Minuend, ops.Subtrahend} {
			if j, found := t.byKey[ref]; found {
				deps = append(deps, j)
			}
		}
		return deps
	}
	return nil
}

func (t *Tree) cycleIn(next func(int) []int) string {
	const (
		white = iota
		grey
		black
	)
	color := make([]int, len(t.nodes))

	var visit func(i int) int
	visit = func(i int) int {
		color[i] = grey
		for _, j := range next(i) {
			switch color[j] {
			case grey:
				return j
			case white:
				if c := visit(j); c >= 0 {
					return c
				}
			}
		}
		color[i] = black
		return -1
	}

	for i := range t.nodes {
		if color[i] != white {
			continue
		}
		if c := visit(i); c >= 0 {
			return t.nodes[c].Key()
		}
	}
	return ""
}
