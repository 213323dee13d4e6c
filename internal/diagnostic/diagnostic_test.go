package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohsen1/tsz-sub013/internal/diagnostic"
)

func TestBagAccumulatesInOrder(t *testing.T) {
	var bag diagnostic.Bag
	bag.Errorf(diagnostic.CodeCannotFindName, 10, 13, "Cannot find name %q.", "foo")
	bag.Errorf(diagnostic.CodeUnexpectedToken, 20, 21, "Unexpected token.")

	all := bag.All()
	assert.Len(t, all, 2)
	assert.Equal(t, diagnostic.CodeCannotFindName, all[0].Code)
	assert.Equal(t, `Cannot find name "foo".`, all[0].Message)
	assert.True(t, bag.HasErrors())
}

func TestTruncateRollsBackSpeculativeDiagnostics(t *testing.T) {
	var bag diagnostic.Bag
	bag.Errorf(diagnostic.CodeUnexpectedToken, 0, 1, "first")
	mark := bag.Mark()
	bag.Errorf(diagnostic.CodeUnexpectedToken, 1, 2, "speculative")
	assert.Equal(t, 2, bag.Len())

	bag.Truncate(mark)
	assert.Equal(t, 1, bag.Len())
	assert.Equal(t, "first", bag.All()[0].Message)
}

func TestHasErrorsFalseWhenOnlyWarnings(t *testing.T) {
	var bag diagnostic.Bag
	bag.Add(diagnostic.Diagnostic{Code: diagnostic.CodeUnusedVariable, Category: diagnostic.CategoryWarning})
	assert.False(t, bag.HasErrors())
}
