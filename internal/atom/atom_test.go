package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/atom"
)

func TestInternRoundTrip(t *testing.T) {
	in := atom.New()

	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")

	assert.Equal(t, a, c, "interning the same text twice must yield the same atom")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "foo", in.Resolve(a))
	assert.Equal(t, "bar", in.Resolve(b))
}

func TestNoneSentinel(t *testing.T) {
	in := atom.New()
	require.Equal(t, atom.None, atom.Atom(0))
	assert.Equal(t, "", in.Resolve(atom.None))

	a := in.Intern("x")
	assert.NotEqual(t, atom.None, a)
}

func TestResolveUnknownAtom(t *testing.T) {
	in := atom.New()
	assert.Equal(t, "", in.Resolve(atom.Atom(999)))
}

func TestLen(t *testing.T) {
	in := atom.New()
	assert.Equal(t, 0, in.Len())
	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	assert.Equal(t, 2, in.Len())
}
