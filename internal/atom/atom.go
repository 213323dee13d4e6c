// Package atom canonicalizes identifier and literal text into small integer
// handles so every downstream component (scanner, parser, binder) compares
// names with a u32 equality check instead of a string comparison.
package atom

// Atom is an opaque handle to a canonicalized string. Two atoms compare
// equal iff the underlying text is identical.
type Atom uint32

// None is the sentinel atom; it never equals an atom returned by Interner.Intern.
const None Atom = 0

// Interner maps strings to Atoms and back for a single compilation session.
// Atoms are stable for the lifetime of the Interner but are not guaranteed
// stable across sessions.
type Interner struct {
	byText map[string]Atom
	byAtom []string
}

// New returns an empty Interner. Index 0 is reserved for None so the first
// real atom is 1; this lets callers use the zero value of Atom as "absent"
// without a separate validity flag.
func New() *Interner {
	return &Interner{
		byText: make(map[string]Atom),
		byAtom: []string{""},
	}
}

// Intern returns the Atom for s, allocating a new one if s has not been seen
// before in this session. O(1) expected.
func (in *Interner) Intern(s string) Atom {
	if a, ok := in.byText[s]; ok {
		return a
	}
	a := Atom(len(in.byAtom))
	in.byAtom = append(in.byAtom, s)
	in.byText[s] = a
	return a
}

// Resolve returns the text for a, or "" if a is None or unknown to this
// Interner. O(1).
func (in *Interner) Resolve(a Atom) string {
	if a == None || int(a) >= len(in.byAtom) {
		return ""
	}
	return in.byAtom[a]
}

// Len reports how many distinct atoms (excluding None) have been interned.
func (in *Interner) Len() int {
	return len(in.byAtom) - 1
}
