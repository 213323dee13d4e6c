package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/binder"
)

func TestMergeLibSymbolsAddsMissingNamesOnly(t *testing.T) {
	_, _, libState := bindSource(t, "const Array = {}; function parseInt(s) { return 0; }")
	arena, _, state := bindSource(t, "let x = 1;")

	state.MergeLibSymbols([]binder.LibFile{{Module: "lib.es5", State: libState}})

	_, ok := state.FileLocals.Get(arena.Interner.Intern("Array"))
	assert.True(t, ok, "lib-only names should be merged into file_locals")

	_, ok = state.FileLocals.Get(arena.Interner.Intern("x"))
	assert.True(t, ok, "the file's own symbols must survive a lib merge")

	require.Contains(t, state.LibBinders, libState)
}

func TestMergeLibSymbolsDoesNotShadowFileOwnDeclaration(t *testing.T) {
	_, _, libState := bindSource(t, "const x = 99;")
	arena, _, state := bindSource(t, "let x = 1;")

	ownID, ok := state.FileLocals.Get(arena.Interner.Intern("x"))
	require.True(t, ok)

	state.MergeLibSymbols([]binder.LibFile{{Module: "lib.es5", State: libState}})

	afterID, ok := state.FileLocals.Get(arena.Interner.Intern("x"))
	require.True(t, ok)
	assert.Equal(t, ownID, afterID, "merge must not overwrite a symbol the file already declares")
}

func TestValidateGlobalSymbolsReportsMissingAfterPartialMerge(t *testing.T) {
	_, _, libState := bindSource(t, "const Array = {};")
	_, _, state := bindSource(t, "let x = 1;")

	state.MergeLibSymbols([]binder.LibFile{{Module: "lib.es5", State: libState}})

	missing := state.ValidateGlobalSymbols()
	assert.Contains(t, missing, "Promise")
	assert.NotContains(t, missing, "Array")
}
