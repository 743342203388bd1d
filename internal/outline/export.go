package outline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Markdown renders the outline as one Markdown heading line per node, in
// pre-order. The '#' markers always reflect the node's level, never its
// tree depth — a level-4 root renders "####". Indentation (two spaces per
// depth) is purely for readability.
func Markdown(o *Outline) string {
	var b strings.Builder
	for _, root := range o.Roots {
		writeMarkdownNode(&b, root, 0)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeMarkdownNode(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(strings.Repeat("#", n.Level))
	b.WriteByte(' ')
	b.WriteString(n.Text)
	b.WriteByte('\n')
	for _, child := range n.Children {
		writeMarkdownNode(b, child, depth+1)
	}
}

// MarshalInterchange serializes the outline to its lossless JSON form:
// roots recursively plus the three statistics fields.
func MarshalInterchange(o *Outline) ([]byte, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal outline: %w", err)
	}
	return data, nil
}

// ParseInterchange reverses MarshalInterchange.
func ParseInterchange(data []byte) (*Outline, error) {
	var o Outline
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}
	if o.LevelCounts == nil {
		o.LevelCounts = make(map[int]int)
	}
	return &o, nil
}
