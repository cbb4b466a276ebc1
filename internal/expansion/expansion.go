// Package expansion tracks which report rows the user has expanded. State
// lives for one viewing session and is never persisted.
package expansion

import "github.com/cleared-dev/dre/internal/accounts"

// State maps node keys to their expanded flag. The zero value has every
// node collapsed.
type State struct {
	expanded map[string]bool
}

// New returns a State with every node collapsed.
func New() *State {
	return &State{expanded: make(map[string]bool)}
}

// Toggle flips the expanded flag of key.
func (s *State) Toggle(key string) {
	s.set(key, !s.expanded[key])
}

// Expand marks keys as expanded.
func (s *State) Expand(keys ...string) {
	for _, k := range keys {
		s.set(k, true)
	}
}

// ExpandAll marks every expandable node of tree as expanded.
func (s *State) ExpandAll(tree *accounts.Tree) {
	for _, i := range tree.Walk() {
		if n := tree.Node(i); n.Expandable {
			s.set(n.Key(), true)
		}
	}
}

// CollapseAll resets every flag.
func (s *State) CollapseAll() {
	s.expanded = make(map[string]bool)
}

// IsExpanded reports the flag of key.
func (s *State) IsExpanded(key string) bool {
	return s.expanded[key]
}

// IsVisible reports whether the node at position i is shown. Level-1 nodes
// and roots are always shown; any other node follows its immediate parent's
// flag only, so a grandchild shows once its parent is expanded even if a
// higher ancestor is collapsed.
func (s *State) IsVisible(tree *accounts.Tree, i int) bool {
	if tree.Node(i).Level == 1 {
		return true
	}
	p, ok := tree.Parent(i)
	if !ok {
		return true
	}
	return s.expanded[tree.Node(p).Key()]
}

// Visible returns the visible positions of tree in pre-order.
func (s *State) Visible(tree *accounts.Tree) []int {
	var out []int
	for _, i := range tree.Walk() {
		if s.IsVisible(tree, i) {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) set(key string, v bool) {
	if s.expanded == nil {
		s.expanded = make(map[string]bool)
	}
	if v {
		s.expanded[key] = true
		return
	}
	delete(s.expanded, key)
}
