// Package traversal drives the animated binary tree walk shown in the
// trees simulator.
package traversal

import "fmt"

// Order is a depth-first traversal order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// Label returns the English name shown on the traversal buttons.
func (o Order) Label() string {
	switch o {
	case PreOrder:
		return "Pre-order"
	case InOrder:
		return "In-order"
	case PostOrder:
		return "Post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Node is one vertex of the demo tree. Ids double as values.
type Node struct {
	Value int
	Left  int
	Right int
}

const none = -1

// Root is the id of the demo tree's root.
const Root = 2

// tree is the fixed 10-node demo tree:
//
//	        2
//	     /     \
//	    0       3
//	   / \     /
//	  7   1   9
//	 / \   \  /
//	6   5  8 4
var tree = map[int]Node{
	2: {Value: 2, Left: 0, Right: 3},
	0: {Value: 0, Left: 7, Right: 1},
	3: {Value: 3, Left: 9, Right: none},
	7: {Value: 7, Left: 6, Right: 5},
	1: {Value: 1, Left: none, Right: 8},
	9: {Value: 9, Left: 4, Right: none},
	6: {Value: 6, Left: none, Right: none},
	5: {Value: 5, Left: none, Right: none},
	8: {Value: 8, Left: none, Right: none},
	4: {Value: 4, Left: none, Right: none},
}

// Levels lists node ids per depth, left to right.
func Levels() [][]int {
	return [][]int{
		{2},
		{0, 3},
		{7, 1, 9},
		{6, 5, 8, 4},
	}
}

// NodeAt returns the node with the given id.
func NodeAt(id int) (Node, bool) {
	n, ok := tree[id]
	return n, ok
}

// Sequence returns the node ids visited by order, starting at the root.
func Sequence(order Order) []int {
	var out []int
	walk(Root, order, &out)
	return out
}

func walk(id int, order Order, out *[]int) {
	if id == none {
		return
	}
	n := tree[id]
	if order == PreOrder {
		*out = append(*out, id)
	}
	walk(n.Left, order, out)
	if order == InOrder {
		*out = append(*out, id)
	}
	walk(n.Right, order, out)
	if order == PostOrder {
		*out = append(*out, id)
	}
}
