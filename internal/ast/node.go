// Package ast implements the thin-node AST arena (spec.md §3.3, §4.2):
// every node is a 16-byte record in a single append-only slice, with
// kind-specific payload addressed through per-kind side pools rather than
// stored inline. This keeps four nodes per 64-byte cache line, the hard
// design constraint spec.md names explicitly.
package ast

import "github.com/mohsen1/tsz-sub013/internal/token"

// NodeIndex is a 32-bit index into an Arena's node pool. NoNode never
// addresses a live slot.
type NodeIndex uint32

// NoNode is the sentinel NodeIndex.
const NoNode NodeIndex = 0

// ThinNode is exactly 16 bytes: kind(2) + flags(2) + pos(4) + end(4) +
// dataIndex(4) = 16. Go does not pack this for us automatically across
// platforms with alignment rules, but this field order and these widths
// produce a 16-byte struct on every architecture Go targets (u16+u16+u32+u32+u32,
// all naturally aligned, no padding).
type ThinNode struct {
	Kind      token.SyntaxKind
	Flags     token.NodeFlags
	Pos       uint32
	End       uint32
	DataIndex uint32
}

// NodeList is the uniform representation for every syntactic list: statement
// lists, parameter lists, argument lists, member lists, type argument
// lists (spec.md §3.2).
type NodeList struct {
	Nodes         []NodeIndex
	Pos           uint32
	End           uint32
	HasTrailingComma bool
}
