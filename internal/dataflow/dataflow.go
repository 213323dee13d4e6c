// Package dataflow implements the definite-assignment analyzer (spec.md
// §4.5): a three-value-lattice worklist dataflow over a flow.Arena's CFG.
package dataflow

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

// State is one point in the three-value assignment lattice (spec.md §4.5).
// The zero value is Unassigned, so a VarState with no entry for a variable
// reads as Unassigned by default.
type State uint8

const (
	Unassigned State = iota
	MaybeAssigned
	DefinitelyAssigned
)

func (s State) String() string {
	switch s {
	case Unassigned:
		return "Unassigned"
	case MaybeAssigned:
		return "MaybeAssigned"
	case DefinitelyAssigned:
		return "DefinitelyAssigned"
	default:
		return "Unknown"
	}
}

// mergeTable is spec.md §4.5's meet table, indexed [a][b].
var mergeTable = [3][3]State{
	Unassigned:         {Unassigned, MaybeAssigned, MaybeAssigned},
	MaybeAssigned:      {MaybeAssigned, MaybeAssigned, MaybeAssigned},
	DefinitelyAssigned: {MaybeAssigned, MaybeAssigned, DefinitelyAssigned},
}

// Merge is the commutative, associative meet operator: Unassigned is not a
// unit element, so merging it with DefinitelyAssigned yields MaybeAssigned.
func Merge(a, b State) State { return mergeTable[a][b] }

// VarState tracks assignment state per variable at one flow node. A missing
// key means Unassigned.
type VarState map[symbol.Id]State

func (v VarState) clone() VarState {
	out := make(VarState, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// mergeWith applies the spec.md §4.5 meet table over the union of both
// sides' tracked variables. A variable absent from one side reads as
// Unassigned there (the zero State), so merging {} with {x:DefinitelyAssigned}
// correctly yields {x:MaybeAssigned}, not a silent overwrite.
func (v VarState) mergeWith(other VarState) VarState {
	out := make(VarState, len(v)+len(other))
	for k, s := range v {
		out[k] = Merge(s, other[k])
	}
	for k, s := range other {
		if _, ok := v[k]; !ok {
			out[k] = Merge(Unassigned, s)
		}
	}
	return out
}

func (v VarState) equal(other VarState) bool {
	for k, s := range v {
		if other.Get(k) != s {
			return false
		}
	}
	for k, s := range other {
		if v.Get(k) != s {
			return false
		}
	}
	return true
}

// Get reports v's state for id, defaulting to Unassigned when untracked.
func (v VarState) Get(id symbol.Id) State {
	return v[id]
}

// Resolver maps a flow node's associated AST node to the symbol it assigns,
// when that node is an ASSIGNMENT flow. The binder's NodeSymbols/
// ResolveIdentifier output supplies this; dataflow has no binder dependency
// of its own so the two packages stay decoupled.
type Resolver func(node ast.NodeIndex) (symbol.Id, bool)

// Analyzer runs the definite-assignment worklist over one flow.Arena for a
// fixed set of tracked variables (spec.md §4.5).
type Analyzer struct {
	flow    *flow.Arena
	tracked map[symbol.Id]bool
	resolve Resolver
}

// New builds an Analyzer over flowArena, tracking exactly the given
// variables and using resolve to find an ASSIGNMENT flow node's target.
func New(flowArena *flow.Arena, tracked []symbol.Id, resolve Resolver) *Analyzer {
	set := make(map[symbol.Id]bool, len(tracked))
	for _, id := range tracked {
		set[id] = true
	}
	return &Analyzer{flow: flowArena, tracked: set, resolve: resolve}
}

// Run performs the worklist fixed-point computation starting at entry with
// an empty state map (spec.md §4.5), returning each visited flow node's
// VarState. A node absent from the result was never reached from entry.
func (an *Analyzer) Run(entry flow.Id) map[flow.Id]VarState {
	states := map[flow.Id]VarState{}
	successors := an.successors()

	queue := []flow.Id{entry}
	enqueued := map[flow.Id]bool{entry: true}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		enqueued[n] = false

		node, ok := an.flow.Get(n)
		if !ok || node.Flags.Has(flow.FlagUnreachable) {
			continue
		}

		var boundary VarState
		if n == entry {
			boundary = VarState{} // spec.md §4.5: entry starts with an empty state map
		}
		merged := an.mergeAntecedents(node, states, boundary)
		if merged == nil {
			continue // no antecedent contributed yet; retry once one does
		}

		out := an.applyEffect(node, merged)
		if prev, ok := states[n]; !ok || !prev.equal(out) {
			states[n] = out
			for _, succ := range successors[n] {
				if !enqueued[succ] {
					queue = append(queue, succ)
					enqueued[succ] = true
				}
			}
		}
	}

	return states
}

// mergeAntecedents merges every antecedent's currently-known state, plus an
// optional boundary state (the entry node's own seeded VarState, nil for
// every other node). Returns nil when nothing has contributed yet, meaning
// this node isn't ready to be computed this round; it is retried once an
// antecedent updates.
func (an *Analyzer) mergeAntecedents(node flow.Node, states map[flow.Id]VarState, boundary VarState) VarState {
	var merged VarState
	any := false
	if boundary != nil {
		merged = boundary.clone()
		any = true
	}
	for _, ant := range node.Antecedent {
		if ant == flow.Unreachable {
			continue
		}
		st, ok := states[ant]
		if !ok {
			continue
		}
		if !any {
			merged = st.clone()
		} else {
			merged = merged.mergeWith(st)
		}
		any = true
	}
	if !any {
		return nil
	}
	return merged
}

func (an *Analyzer) applyEffect(node flow.Node, in VarState) VarState {
	if !node.Flags.Has(flow.FlagAssignment) || an.resolve == nil {
		return in
	}
	id, ok := an.resolve(node.Node)
	if !ok || !an.tracked[id] {
		return in
	}
	out := in.clone()
	out[id] = DefinitelyAssigned
	return out
}

// successors inverts the arena's antecedent links into a forward
// predecessor->successor map, since FlowNode only stores backward edges.
func (an *Analyzer) successors() map[flow.Id][]flow.Id {
	out := make(map[flow.Id][]flow.Id)
	for i := 1; i <= an.flow.Len(); i++ {
		id := flow.Id(i)
		node, ok := an.flow.Get(id)
		if !ok {
			continue
		}
		for _, ant := range node.Antecedent {
			out[ant] = append(out[ant], id)
		}
	}
	return out
}

// IsDefinitelyAssigned answers spec.md §4.5's is_definitely_assigned(var,
// at_flow) query against a Run result.
func IsDefinitelyAssigned(states map[flow.Id]VarState, at flow.Id, v symbol.Id) bool {
	st, ok := states[at]
	if !ok {
		return false
	}
	return st.Get(v) == DefinitelyAssigned
}
