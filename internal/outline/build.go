package outline

// Build constructs the outline forest from a position-ordered record
// sequence in a single left-to-right pass.
//
// An ancestor stack tracks the currently open chain of nodes. Each new
// heading pops every open node whose level is >= its own: those can no
// longer be its ancestors. Whatever remains on top adopts the heading as
// its last child; an empty stack makes it a new root. Heading levels are
// not guaranteed monotonic or contiguous (a level-1 can be followed
// directly by a level-4, then a level-2) and the pop rule reparents any
// such jump without lookahead. No placeholder ancestors are ever
// synthesized: a document whose first heading is level 3 gets a level-3
// root.
func Build(records []HeadingRecord, opts Options) *Outline {
	o := &Outline{LevelCounts: make(map[int]int)}
	var stack []*Node

	for _, rec := range Filter(records, opts) {
		node := newNode(rec, opts)

		for len(stack) > 0 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			o.Roots = append(o.Roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)

		o.TotalHeadings++
		o.LevelCounts[node.Level]++
		if node.Level > o.MaxLevelSeen {
			o.MaxLevelSeen = node.Level
		}
	}
	return o
}

// BuildFlat applies the same filtering as Build but skips parent/child
// wiring: it returns the ordered node list with Children always empty.
// For identical options the result contains exactly the headings of
// Build's forest, in pre-order.
func BuildFlat(records []HeadingRecord, opts Options) []*Node {
	filtered := Filter(records, opts)
	nodes := make([]*Node, 0, len(filtered))
	for _, rec := range filtered {
		nodes = append(nodes, newNode(rec, opts))
	}
	return nodes
}

func newNode(rec HeadingRecord, opts Options) *Node {
	n := &Node{
		ID:        NodeID(rec.Position),
		Text:      rec.Text,
		Level:     rec.Level,
		StyleName: rec.StyleName,
		Position:  rec.Position,
	}
	if opts.IncludeFormat && rec.Format != nil {
		f := *rec.Format
		n.Format = &f
	}
	return n
}
