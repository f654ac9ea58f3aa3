package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionsToggle(t *testing.T) {
	sel := NewSelections()

	assert.True(t, sel.Toggle("/d", "/d/a"))
	assert.True(t, sel.Toggle("/d", "/d/b"))
	assert.True(t, sel.Has("/d", "/d/a"))
	assert.Equal(t, []string{"/d/a", "/d/b"}, sel.Get("/d"))

	assert.False(t, sel.Toggle("/d", "/d/a"))
	assert.Equal(t, []string{"/d/b"}, sel.Get("/d"))

	assert.False(t, sel.Toggle("/d", "/d/b"))
	assert.False(t, sel.Contains("/d"))
	assert.Equal(t, 0, sel.Dirs())
	assert.Nil(t, sel.Get("/d"))
}

func TestSelectionsZeroValue(t *testing.T) {
	var sel Selections
	assert.Nil(t, sel.Get("/x"))
	assert.True(t, sel.Toggle("/x", "/x/1"))
	assert.Equal(t, 1, sel.Dirs())
}

func TestSelectionsGetReturnsCopy(t *testing.T) {
	sel := NewSelections()
	sel.Toggle("/d", "/d/a")

	got := sel.Get("/d")
	got[0] = "/d/changed"
	assert.Equal(t, []string{"/d/a"}, sel.Get("/d"))
}

func TestSelectionsRemoveAndClear(t *testing.T) {
	sel := NewSelections()
	sel.Toggle("/one", "/one/a")
	sel.Toggle("/one", "/one/b")
	sel.Toggle("/two", "/one/a")
	sel.Toggle("/three", "/three/c")

	sel.Remove("/one/a")
	assert.Equal(t, []string{"/one/b"}, sel.Get("/one"))
	assert.False(t, sel.Contains("/two"))

	sel.Clear("/three")
	assert.False(t, sel.Contains("/three"))
	assert.Equal(t, 1, sel.Dirs())
}

func TestSelectionsRemoveDropsSubtree(t *testing.T) {
	sel := NewSelections()
	sel.Toggle("/d", "/d/a")
	sel.Toggle("/d/sub", "/d/sub/x")
	sel.Toggle("/other", "/d/sub/x")
	sel.Toggle("/other", "/other/y")
	sel.Toggle("/dx", "/dx/z")

	sel.Remove("/d")
	assert.False(t, sel.Contains("/d"))
	assert.False(t, sel.Contains("/d/sub"))
	assert.Equal(t, []string{"/other/y"}, sel.Get("/other"))
	assert.Equal(t, []string{"/dx/z"}, sel.Get("/dx"))
}
