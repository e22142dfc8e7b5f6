package driver

import "solattr/internal/ast"

// Repeat is an attribute that is equal to one earlier in the same list.
type Repeat struct {
	Node  ast.Node
	First ast.Node
}

// Dedupe finds attributes repeated within nodes under node identity: keyword
// attributes by keyword, overrides by their path list and modifiers by name.
// It reports repeats only; which repeats are illegal is not decided here.
func Dedupe(nodes []ast.Node) []Repeat {
	var repeats []Repeat
	seen := make(map[uint64][]ast.Node)

	for _, n := range nodes {
		h := n.Hash()
		var first ast.Node
		for _, prev := range seen[h] {
			if ast.Equal(prev, n) {
				first = prev
				break
			}
		}

		if first != nil {
			repeats = append(repeats, Repeat{Node: n, First: first})
			continue
		}
		seen[h] = append(seen[h], n)
	}

	return repeats
}
