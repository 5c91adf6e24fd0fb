package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedAtoms(t *testing.T) {
	tbl := New()

	id, ok := tbl.Lookup("PRIMARY")
	require.True(t, ok)
	assert.Equal(t, uint32(1), id)

	name, ok := tbl.Name(1)
	require.True(t, ok)
	assert.Equal(t, "PRIMARY", name)

	id, ok = tbl.Lookup("WM_TRANSIENT_FOR")
	require.True(t, ok)
	name, ok = tbl.Name(id)
	require.True(t, ok)
	assert.Equal(t, "WM_TRANSIENT_FOR", name)
}

func TestInternNewAtom(t *testing.T) {
	tbl := New()

	id := tbl.Intern("_MY_CUSTOM_ATOM", false)
	assert.Greater(t, id, uint32(68))

	// Interning the same name again returns the same id.
	again := tbl.Intern("_MY_CUSTOM_ATOM", false)
	assert.Equal(t, id, again)

	name, ok := tbl.Name(id)
	require.True(t, ok)
	assert.Equal(t, "_MY_CUSTOM_ATOM", name)
}

func TestInternOnlyIfExists(t *testing.T) {
	tbl := New()

	id := tbl.Intern("_NOT_YET_BOUND", true)
	assert.Equal(t, None, id)

	_, ok := tbl.Lookup("_NOT_YET_BOUND")
	assert.False(t, ok)

	minted := tbl.Intern("_NOT_YET_BOUND", false)
	assert.NotEqual(t, None, minted)

	found := tbl.Intern("_NOT_YET_BOUND", true)
	assert.Equal(t, minted, found)
}

func TestAtomsAreCaseSensitive(t *testing.T) {
	tbl := New()

	lower := tbl.Intern("primary", false)
	upper, ok := tbl.Lookup("PRIMARY")
	require.True(t, ok)
	assert.NotEqual(t, upper, lower)
}

func TestNoneIsNeverBound(t *testing.T) {
	tbl := New()
	_, ok := tbl.Name(None)
	assert.False(t, ok)
}
