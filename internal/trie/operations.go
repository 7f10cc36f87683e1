package trie

import "errors"

var (
	// ErrEmptyWord is returned when an empty word is passed to Insert.
	ErrEmptyWord = errors.New("trie: cannot insert empty word")

	// ErrNoRoot is returned when the tree has lost its root node. This is a
	// programming error, not a condition reachable through the public API.
	ErrNoRoot = errors.New("trie: tree has no root node")
)

// Insert stores a word in the tree. The walk descends existing children one
// symbol at a time and attaches a fresh chain of nodes for whatever suffix
// is missing; the node reached by the final symbol is marked terminal.
// Inserting a word that is already stored is a no-op, so Len and Query
// results are unchanged by duplicates.
func (t *PrefixTree) Insert(word string) error {
	if t.root == nil {
		return ErrNoRoot
	}
	if word == "" {
		return ErrEmptyWord
	}

	node := t.root
	for _, symbol := range word {
		child, ok := node.child(symbol)
		if !ok {
			child = node.attach(symbol)
		}
		node = child
	}

	if !node.terminal {
		node.terminal = true
		t.size++
	}
	return nil
}

// Contains reports whether the exact word is stored in the tree.
func (t *PrefixTree) Contains(word string) bool {
	node := t.findNode(word)
	return node != nil && node.terminal
}

// findNode returns the node reached by walking the given character
// sequence from the root, or nil if the path does not exist.
func (t *PrefixTree) findNode(path string) *Node {
	if t.root == nil {
		return nil
	}
	node := t.root
	for _, symbol := range path {
		child, ok := node.child(symbol)
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Query returns every stored word that starts with prefix, in pre-order of
// the tree with each node's children visited in insertion order. An empty
// prefix returns every stored word. A prefix that matches no path, or an
// empty tree, yields an empty result; Query never fails.
func (t *PrefixTree) Query(prefix string) []string {
	var results []string
	node := t.findNode(prefix)
	if node == nil {
		return results
	}

	// The prefix itself may be a stored word. It is emitted once here; the
	// walk below only emits strict extensions.
	if node.terminal {
		results = append(results, prefix)
	}

	collectWords(node, prefix, &results)
	return results
}

// collectWords appends every stored word in the subtree below node,
// pre-order, children in insertion order.
func collectWords(node *Node, prefix string, results *[]string) {
	for _, child := range node.children {
		word := prefix + string(child.symbol)
		if child.terminal {
			*results = append(*results, word)
		}
		collectWords(child, word, results)
	}
}
