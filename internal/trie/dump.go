package trie

import "strings"

// String renders the tree one symbol per line, indented by depth, with
// terminal nodes marked. Useful when eyeballing how a word list was indexed.
func (t *PrefixTree) String() string {
	if t.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, child := range t.root.children {
		writeIndented(&b, child, 0)
	}
	return b.String()
}

func writeIndented(b *strings.Builder, node *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteRune(node.symbol)
	if node.terminal {
		b.WriteString(" *")
	}
	b.WriteByte('\n')
	for _, child := range node.children {
		writeIndented(b, child, depth+1)
	}
}
