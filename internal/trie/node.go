package trie

// Node is a single character position in the tree. The path of symbols from
// the root down to a node spells a character sequence; the node is terminal
// when that sequence is a stored word.
type Node struct {
	// symbol is the character this node contributes. The sentinel root
	// carries no symbol.
	symbol rune

	// children holds child nodes in insertion order; bySymbol indexes the
	// same nodes by symbol so no two siblings can share one.
	children []*Node
	bySymbol map[rune]*Node

	// parent is a non-owning back-reference, nil for the sentinel root.
	parent *Node

	// terminal marks the end of a stored word.
	terminal bool
}

// newNode creates a node carrying the given symbol.
func newNode(symbol rune) *Node {
	return &Node{
		symbol:   symbol,
		bySymbol: make(map[rune]*Node),
	}
}

// Symbol returns the character this node contributes to words passing
// through it. The sentinel root returns the zero rune.
func (n *Node) Symbol() rune {
	return n.symbol
}

// Parent returns the owning node, or nil for the sentinel root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Terminal reports whether the path ending at this node is a stored word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// child returns the child carrying symbol, if any.
func (n *Node) child(symbol rune) (*Node, bool) {
	c, ok := n.bySymbol[symbol]
	return c, ok
}

// attach creates a child carrying symbol, sets its parent back-reference and
// records it in both the ordered list and the symbol index.
func (n *Node) attach(symbol rune) *Node {
	c := newNode(symbol)
	c.parent = n
	n.children = append(n.children, c)
	n.bySymbol[symbol] = c
	return c
}

// PrefixTree stores words as root-to-terminal paths and answers
// which-words-start-with-this-prefix queries.
type PrefixTree struct {
	// root is a symbol-less sentinel; its children carry the first letters
	// of the stored words.
	root *Node

	// size counts distinct stored words.
	size int
}

// New creates an empty tree.
func New() *PrefixTree {
	return &PrefixTree{
		root: newNode(0),
	}
}

// IsEmpty reports whether no word has been stored yet.
func (t *PrefixTree) IsEmpty() bool {
	return t.root == nil || len(t.root.children) == 0
}

// Len returns the number of distinct stored words.
func (t *PrefixTree) Len() int {
	return t.size
}
