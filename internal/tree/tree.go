// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

// Package tree renders flat item paths as the familiar unix `tree` layout.
//
// A [Tree] is built from [Entry] values and rendered to text in one pass. It
// performs no I/O of its own and carries no styling; callers pass display
// names (optionally already coloured) and write the result wherever they
// like. Rendering the same tree twice produces identical output.
package tree

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	pipeIndent = "│   "
	lastIndent = "    "
)

// Entry is a single item to place in the tree. The last path segment is the
// item itself; the preceding segments are the folders it nests under.
type Entry struct {
	// Path locates the entry. It must contain at least one segment.
	Path []string

	// Title overrides the display text of the final segment when non-empty.
	// Folder segments always display verbatim.
	Title string

	// Annotations are extra detail lines printed directly beneath the
	// entry, indented to its children's depth with no branch glyph.
	Annotations []string
}

// Tree accumulates entries under a single root label.
//
// Folder segments with the same name merge into one node; entries themselves
// never merge, so rendering always emits exactly one line per inserted entry
// even when titles collide.
type Tree struct {
	label string
	root  node
}

type node struct {
	name        string
	folders     []*node
	leaves      []*node
	annotations []string
}

// New returns an empty tree rooted at the given label.
func New(label string) *Tree {
	return &Tree{label: label}
}

// Insert places an entry into the tree, creating any missing folder nodes
// along its path. An entry with an empty path is rejected with [ErrEmptyPath]
// and the tree is left unchanged.
func (t *Tree) Insert(e Entry) error {
	if len(e.Path) == 0 {
		return ErrEmptyPath
	}

	cur := &t.root
	for _, segment := range e.Path[:len(e.Path)-1] {
		cur = cur.folder(segment)
	}

	name := e.Path[len(e.Path)-1]
	if e.Title != "" {
		name = e.Title
	}
	cur.leaves = append(cur.leaves, &node{
		name:        name,
		annotations: e.Annotations,
	})
	return nil
}

// folder returns the child folder with the given name, creating it when
// absent. Lookup is by exact name so merged folders keep their original
// casing.
func (n *node) folder(name string) *node {
	for _, f := range n.folders {
		if f.name == name {
			return f
		}
	}
	f := &node{name: name}
	n.folders = append(n.folders, f)
	return f
}

// children returns the node's children in render order: folders sorted
// case-insensitively (byte order breaking ties), then leaves in the order
// they were inserted.
func (n *node) children() []*node {
	folders := make([]*node, len(n.folders))
	copy(folders, n.folders)
	sort.SliceStable(folders, func(i, j int) bool {
		a := strings.ToLower(folders[i].name)
		b := strings.ToLower(folders[j].name)
		if a != b {
			return a < b
		}
		return folders[i].name < folders[j].name
	})
	return append(folders, n.leaves...)
}

// Render writes the tree to w, one line per node: the root label first,
// then every node prefixed by its ancestry. Ancestors that still have
// siblings below them contribute "│   " to the prefix, exhausted ones
// "    "; the node itself hangs off "├── ", or "└── " when it is the last
// of its siblings.
func (t *Tree) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.label); err != nil {
		return fmt.Errorf("render tree root: %w", err)
	}

	children := t.root.children()
	for i, c := range children {
		if err := renderNode(w, c, "", i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}

// Lines renders the tree and returns it as individual lines without
// trailing newlines. The root label is always the first line.
func (t *Tree) Lines() []string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_ = t.Render(&sb)
	return strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
}

func renderNode(w io.Writer, n *node, prefix string, last bool) error {
	branch, indent := branchMid, pipeIndent
	if last {
		branch, indent = branchLast, lastIndent
	}

	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, n.name); err != nil {
		return fmt.Errorf("render tree node: %w", err)
	}

	childPrefix := prefix + indent
	for _, a := range n.annotations {
		if _, err := fmt.Fprintf(w, "%s%s\n", childPrefix, a); err != nil {
			return fmt.Errorf("render tree annotation: %w", err)
		}
	}

	children := n.children()
	for i, c := range children {
		if err := renderNode(w, c, childPrefix, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}
