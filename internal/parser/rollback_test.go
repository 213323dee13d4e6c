package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise the speculative tryParse* functions directly (white-box,
// same package) to confirm a failed attempt truncates every node it
// appended, not just the scanner/diagnostics snapshots.

func TestTryParseArrowFunctionRollsBackParameterNodeOnFailure(t *testing.T) {
	p := New("x + 1", "a.ts")
	mark := p.arena.Mark()

	_, ok := p.tryParseArrowFunction()
	assert.False(t, ok, "a bare identifier not followed by => is not an arrow function")
	assert.Equal(t, mark, p.arena.Mark(), "the synthetic parameter node for the rejected `x =>` shorthand must be rolled back")
}

func TestTryParseArrowFunctionKeepsNodesOnSuccess(t *testing.T) {
	p := New("x => x", "a.ts")
	mark := p.arena.Mark()

	_, ok := p.tryParseArrowFunction()
	require.True(t, ok)
	assert.Greater(t, p.arena.Mark(), mark, "a real arrow function should leave its nodes in the arena")
}

func TestTryParseTypeArgumentsRollsBackOnMissingCloseAngle(t *testing.T) {
	p := New("<b;", "a.ts")
	mark := p.arena.Mark()

	_, ok := p.tryParseTypeArguments()
	assert.False(t, ok, "`<b;` has no closing `>` so this is not a type-argument list")
	assert.Equal(t, mark, p.arena.Mark(), "the type node parsed for `b` must be rolled back along with the scanner/diagnostics")
}

func TestTryParseTypeArgumentsKeepsNodesOnSuccess(t *testing.T) {
	p := New("<b>", "a.ts")
	mark := p.arena.Mark()

	_, ok := p.tryParseTypeArguments()
	require.True(t, ok)
	assert.Greater(t, p.arena.Mark(), mark)
}

func TestTryParseIndexSignatureRollsBackKeyTypeOnMissingCloseBracket(t *testing.T) {
	p := New("[x: string, y]: number", "a.ts")
	start := p.pos()
	mark := p.arena.Mark()

	_, ok := p.tryParseIndexSignature(start)
	assert.False(t, ok, "a comma instead of `]` after the key type is not a valid index signature")
	assert.Equal(t, mark, p.arena.Mark(), "the key type node parsed for `string` must be rolled back")
}

func TestTryParseIndexSignatureKeepsNodesOnSuccess(t *testing.T) {
	p := New("[x: string]: number", "a.ts")
	start := p.pos()
	mark := p.arena.Mark()

	_, ok := p.tryParseIndexSignature(start)
	require.True(t, ok)
	assert.Greater(t, p.arena.Mark(), mark)
}
