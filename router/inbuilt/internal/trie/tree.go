package trie

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/indigo-web/lattice/kv"
)

var (
	ErrParamConflict = errors.New(
		"having two different names for wildcards sharing common prefix isn't supported",
	)
	ErrEmptyParamName = errors.New("wildcard segment must have a name")
)

// ParamMarker prefixes a path segment, making it a wildcard capturing a single segment.
const ParamMarker = ':'

// handle addresses a node in the arena. The root is always 0, so it can't be a child of
// anyone and zero is used to denote absence of a dynamic child.
type handle uint32

const root handle = 0

type node[T any] struct {
	static   map[string]handle
	dynamic  handle
	wildcard string
	isLeaf   bool
	payload  T
}

// Tree is a path trie keyed by `/`-separated segments. Nodes are stored in a single arena
// and refer to each other by indices. Empty segments are ignored both on insertion and
// lookup, so "/a//b/" and "/a/b" are the same path.
//
// Tree isn't safe for concurrent mutation, but any number of concurrent lookups is fine as
// long as no mutations happen in the meantime.
type Tree[T any] struct {
	nodes []node[T]
}

func New[T any]() *Tree[T] {
	return &Tree[T]{
		nodes: make([]node[T], 1),
	}
}

// Insert sets the payload of the path, overriding the previous one if any.
func (t *Tree[T]) Insert(path string, value T) error {
	return t.Upsert(path, func(payload *T) {
		*payload = value
	})
}

// Upsert walks the path creating missing nodes and calls fn with the pointer to the leaf
// payload, which is the zero value if the path is new. The pointer must not be retained.
func (t *Tree[T]) Upsert(path string, fn func(payload *T)) error {
	current := root

	for seg := range Segments(path) {
		next, err := t.child(current, seg)
		if err != nil {
			return fmt.Errorf("%w: %s", err, path)
		}

		current = next
	}

	leaf := &t.nodes[current]
	leaf.isLeaf = true
	fn(&leaf.payload)

	return nil
}

// child returns the child of the node matching the template segment, creating it if
// necessary.
func (t *Tree[T]) child(parent handle, seg string) (handle, error) {
	if !IsWildcard(seg) {
		if next, found := t.nodes[parent].static[seg]; found {
			return next, nil
		}

		next := t.alloc()
		if t.nodes[parent].static == nil {
			t.nodes[parent].static = make(map[string]handle)
		}

		t.nodes[parent].static[seg] = next

		return next, nil
	}

	name := seg[1:]
	if len(name) == 0 {
		return 0, ErrEmptyParamName
	}

	if t.nodes[parent].dynamic != root {
		if t.nodes[parent].wildcard != name {
			return 0, ErrParamConflict
		}

		return t.nodes[parent].dynamic, nil
	}

	next := t.alloc()
	t.nodes[parent].dynamic = next
	t.nodes[parent].wildcard = name

	return next, nil
}

func (t *Tree[T]) alloc() handle {
	t.nodes = append(t.nodes, node[T]{})
	return handle(len(t.nodes) - 1)
}

// Lookup finds the payload for a concrete path. On every level a static segment is
// preferred over a wildcard. Values captured by wildcards are added into the storage,
// which may be nil if they aren't of any interest.
func (t *Tree[T]) Lookup(path string, wildcards *kv.Storage) (value T, found bool) {
	current := root

	for seg := range Segments(path) {
		n := &t.nodes[current]

		if next, ok := n.static[seg]; ok {
			current = next
			continue
		}

		if n.dynamic == root {
			return value, false
		}

		if wildcards != nil {
			wildcards.Add(n.wildcard, seg)
		}

		current = n.dynamic
	}

	leaf := &t.nodes[current]

	return leaf.payload, leaf.isLeaf
}

// Len returns the number of nodes, including the root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Segments iterates over non-empty `/`-separated segments of the path.
func Segments(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(path) > 0 {
			var seg string
			seg, path, _ = strings.Cut(path, "/")

			if len(seg) > 0 && !yield(seg) {
				return
			}
		}
	}
}

func IsWildcard(seg string) bool {
	return len(seg) > 0 && seg[0] == ParamMarker
}
