package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/mathpad/linalg/parser"
)

func TestFromSourceComplete(t *testing.T) {
	r := FromSource("<1,2>+<3,4>")

	assert.Equal(t, "<1,2>+<3,4>", r.Source)
	assert.Len(t, r.Tokens, 12)
	assert.Empty(t, r.Diagnostics)
	assert.False(t, r.HasPlaceholders())
	assert.True(t, r.IsComplete())
	assert.Equal(t, parser.KindBinary, r.Tree.Kind())
	assert.Equal(t, "Vector\n  Number 4\n  Number 6\n", parser.Dump(r.Simplified))
}

func TestFromSourceIncomplete(t *testing.T) {
	r := FromSource("<1,")

	assert.True(t, r.HasPlaceholders())
	assert.False(t, r.IsComplete())
	assert.Equal(t, []string{"expected '>' to close vector at 3"}, r.DiagnosticStrings())
}

func TestFromSourcePlaceholdersWithoutDiagnostics(t *testing.T) {
	r := FromSource("<,>")

	assert.Empty(t, r.Diagnostics)
	assert.True(t, r.HasPlaceholders())
	assert.False(t, r.IsComplete())
}

func TestFromSourceEmpty(t *testing.T) {
	r := FromSource("")

	assert.Len(t, r.Tokens, 1)
	assert.Equal(t, parser.KindPlaceholder, r.Tree.Kind())
	assert.Equal(t, parser.KindPlaceholder, r.Simplified.Kind())
	assert.Equal(t, []string{"expected expression at 0"}, r.DiagnosticStrings())
}
