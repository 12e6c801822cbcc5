package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/pprof/profile"
)

// treeNode is used while the tree is being built; children are keyed by function ID.
type treeNode struct {
	node      *FlameGraphNode
	children  map[uint64]*treeNode
	selfValue int64 // value of samples whose leaf is this node
}

func newTreeNode(name string) *treeNode {
	return &treeNode{
		node:     &FlameGraphNode{Name: name},
		children: make(map[uint64]*treeNode),
	}
}

// BuildFlameGraphTree converts a pprof profile into a FlameGraphNode tree rooted at "roster".
// valueIndex selects the sample value (StudentsValueIndex or MarksValueIndex for grade profiles).
func BuildFlameGraphTree(p *profile.Profile, valueIndex int) (*FlameGraphNode, error) {
	if valueIndex < 0 || valueIndex >= len(p.SampleType) {
		return nil, fmt.Errorf("invalid value index %d for profile with %d sample types", valueIndex, len(p.SampleType))
	}

	root := newTreeNode("roster")
	total := int64(0)

	for _, sample := range p.Sample {
		if len(sample.Value) <= valueIndex {
			continue
		}
		value := sample.Value[valueIndex]
		if value == 0 {
			continue
		}
		total = addValues(total, value)

		// Location[0] is the leaf, so walk from the end to go caller -> callee.
		current := root
		for i := len(sample.Location) - 1; i >= 0; i-- {
			loc := sample.Location[i]
			if len(loc.Line) == 0 {
				continue
			}
			fn := loc.Line[0].Function
			if fn == nil {
				fn = &profile.Function{ID: 0, Name: fmt.Sprintf("unknown @ 0x%x", loc.Address)}
			}
			child, ok := current.children[fn.ID]
			if !ok {
				child = newTreeNode(fn.Name)
				current.children[fn.ID] = child
			}
			if i == 0 {
				child.selfValue = addValues(child.selfValue, value)
			}
			current = child
		}
	}

	finalizeTree(root)
	root.node.Value = total
	return root.node, nil
}

// finalizeTree sums self + children values bottom-up and fills Children,
// ordered by value descending then name so the output is deterministic.
func finalizeTree(tn *treeNode) int64 {
	total := tn.selfValue
	children := make([]*FlameGraphNode, 0, len(tn.children))
	for _, child := range tn.children {
		childTotal := finalizeTree(child)
		child.node.Value = childTotal
		if childTotal > 0 {
			children = append(children, child.node)
		}
		total = addValues(total, childTotal)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].Value != children[j].Value {
			return children[i].Value > children[j].Value
		}
		return children[i].Name < children[j].Name
	})
	tn.node.Children = children
	return total
}

// addValues adds two sample values, saturating at the int64 limits.
func addValues(a, b int64) int64 {
	sum := a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && sum >= 0:
		return math.MinInt64
	}
	return sum
}
