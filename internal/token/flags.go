package token

// NodeFlags is the ThinNode.Flags bitset (spec.md §3.3). It carries both
// syntactic modifiers (parsed once, never recomputed) and a few
// scanner-observed facts the binder and parser need without re-deriving
// them from child tokens. Bits are grouped so a single mask test answers
// "does this declaration have any modifier" (ModifierMask) per spec.md §9's
// allowance to precompute a flag word instead of scanning a modifier list.
type NodeFlags uint16

const (
	FlagNone NodeFlags = 0

	// Declaration-list / variable flags.
	FlagLet   NodeFlags = 1 << 0
	FlagConst NodeFlags = 1 << 1

	// Modifier flags (declarations).
	FlagExport   NodeFlags = 1 << 2
	FlagDefault  NodeFlags = 1 << 3
	FlagAmbient  NodeFlags = 1 << 4 // inside `declare`
	FlagStatic   NodeFlags = 1 << 5
	FlagAbstract NodeFlags = 1 << 6
	FlagAsync    NodeFlags = 1 << 7
	FlagReadonly NodeFlags = 1 << 8
	FlagPrivate  NodeFlags = 1 << 9
	FlagProtected NodeFlags = 1 << 10
	FlagPublic   NodeFlags = 1 << 11

	// Parser/recovery facts.
	FlagSynthesized NodeFlags = 1 << 12 // recovery-synthesized node, empty text
	FlagTypeOnly    NodeFlags = 1 << 13 // `import type` / `export type`

	ModifierMask = FlagExport | FlagDefault | FlagAmbient | FlagStatic |
		FlagAbstract | FlagAsync | FlagReadonly | FlagPrivate | FlagProtected | FlagPublic
)

// Has reports whether all bits in mask are set in f.
func (f NodeFlags) Has(mask NodeFlags) bool {
	return f&mask == mask
}
