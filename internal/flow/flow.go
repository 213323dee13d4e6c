// Package flow implements the binder's control-flow graph data model
// (spec.md §3.6): FlowNode, FlowNodeId, and the per-file FlowNodeArena.
package flow

import "github.com/mohsen1/tsz-sub013/internal/ast"

// Id is a 32-bit index into a per-file Arena. NoFlow never addresses a live
// entry.
type Id uint32

const NoFlow Id = 0

// Flags is the FlowNode.Flags bitset (spec.md §3.6). Mutually exclusive
// over one node: a FlowNode is exactly one of these kinds.
type Flags uint32

const (
	FlagNone Flags = 0

	FlagStart Flags = 1 << iota
	FlagUnreachable
	FlagBranchLabel
	FlagLoopLabel
	FlagAssignment
	FlagCall
	FlagTrueCondition
	FlagFalseCondition
	FlagSwitchClause
	FlagArrayMutation
)

func (f Flags) Has(mask Flags) bool { return f&mask == mask }
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Node is one point in the control-flow graph (spec.md §3.6). Node is the
// associated syntax (assignment target, condition, switch clause, ...);
// ast.NoNode for labels. Antecedent holds predecessors, multiple for merge
// points and loop back-edges.
type Node struct {
	Flags      Flags
	Node       ast.NodeIndex
	Antecedent []Id
}

// Arena owns every FlowNode produced while binding one source file. Index 0
// is reserved for NoFlow; index 1 is the pre-allocated UNREACHABLE sentinel
// used to extinguish infeasible paths (spec.md §3.6).
type Arena struct {
	nodes []Node
}

// NewArena allocates an Arena with the NoFlow sentinel and the shared
// Unreachable sentinel already in place.
func NewArena() *Arena {
	a := &Arena{}
	a.nodes = append(a.nodes, Node{}) // index 0 == NoFlow
	a.nodes = append(a.nodes, Node{Flags: FlagUnreachable})
	return a
}

// Unreachable is the arena-wide UNREACHABLE sentinel node id.
const Unreachable Id = 1

// New allocates a fresh flow node with the given flags, associated node, and
// antecedents, returning its Id.
func (a *Arena) New(flags Flags, node ast.NodeIndex, antecedents ...Id) Id {
	id := Id(len(a.nodes))
	a.nodes = append(a.nodes, Node{
		Flags:      flags,
		Node:       node,
		Antecedent: append([]Id(nil), antecedents...),
	})
	return id
}

// Label allocates a BRANCH_LABEL or LOOP_LABEL node with no antecedents yet;
// callers append to it via AddAntecedent as branches/back-edges are
// discovered during the walk.
func (a *Arena) Label(flags Flags) Id {
	return a.New(flags, ast.NoNode)
}

// AddAntecedent appends pred to id's antecedent list, e.g. wiring a loop
// back-edge into a LOOP_LABEL node once the body has been walked.
func (a *Arena) AddAntecedent(id Id, pred Id) {
	if id == NoFlow || int(id) >= len(a.nodes) {
		return
	}
	a.nodes[id].Antecedent = append(a.nodes[id].Antecedent, pred)
}

// Get returns the Node for id, or the zero Node and false if id is NoFlow or
// unknown.
func (a *Arena) Get(id Id) (Node, bool) {
	if id == NoFlow || int(id) >= len(a.nodes) {
		return Node{}, false
	}
	return a.nodes[id], true
}

// Len reports how many flow nodes (excluding the NoFlow sentinel) have been
// allocated.
func (a *Arena) Len() int { return len(a.nodes) - 1 }

// IsUnreachable reports whether id carries the UNREACHABLE flag (the shared
// sentinel or any node allocated with that flag); NoFlow and unknown ids
// also report true. Antecedents are not inspected.
func (a *Arena) IsUnreachable(id Id) bool {
	node, ok := a.Get(id)
	if !ok {
		return true
	}
	return node.Flags.Has(FlagUnreachable)
}
