package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	t.Run("equal contents", func(t *testing.T) {
		d, err := UnifiedDiff("a.txt", "same\n", "same\n", true)
		require.NoError(t, err)
		assert.Empty(t, d)
	})

	t.Run("changed line", func(t *testing.T) {
		d, err := UnifiedDiff("a.txt", "one\ntwo\n", "one\nthree\n", true)
		require.NoError(t, err)
		assert.Contains(t, d, "--- a/a.txt")
		assert.Contains(t, d, "+++ b/a.txt")
		assert.Contains(t, d, "-two")
		assert.Contains(t, d, "+three")
	})

	t.Run("new file", func(t *testing.T) {
		d, err := UnifiedDiff("b.txt", "", "hello\n", false)
		require.NoError(t, err)
		assert.Contains(t, d, "--- /dev/null")
		assert.Contains(t, d, "+hello")
	})
}

func TestColorizeDiff_KeepsText(t *testing.T) {
	in := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n"
	out := ColorizeDiff(in)
	for _, s := range []string{"a/x", "b/x", "@@ -1 +1 @@", "-old", "+new"} {
		assert.Contains(t, out, s)
	}
}
