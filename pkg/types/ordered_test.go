package types_test

import (
	"testing"

	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_KeepsInsertionOrder(t *testing.T) {
	var m types.OrderedMap[string]
	m.Set("zeta", "1")
	m.Set("alpha", "2")
	m.Set("mid", "3")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMap_ReplaceKeepsPosition(t *testing.T) {
	m := types.NewOrderedMap(
		types.Entry[string]{Key: "a", Value: "1"},
		types.Entry[string]{Key: "b", Value: "2"},
		types.Entry[string]{Key: "a", Value: "3"},
	)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestOrderedMap_EntriesIsACopy(t *testing.T) {
	m := types.NewOrderedMap(types.Entry[string]{Key: "a", Value: "1"})

	entries := m.Entries()
	entries[0].Value = "changed"

	v, _ := m.Get("a")
	assert.Equal(t, "1", v)
}

func TestInstallList_IsEmpty(t *testing.T) {
	assert.True(t, types.InstallList{}.IsEmpty())

	var l types.InstallList
	l.Env.Set("FOO", "bar")
	assert.False(t, l.IsEmpty())
}

func TestStringContent_IsRaw(t *testing.T) {
	c := types.StringContent("echo hi")

	assert.Equal(t, types.ContentRaw, c.Kind)
	assert.Equal(t, "echo hi", c.Value)
	assert.True(t, c.Shorthand)
	assert.False(t, types.ObjectContent(types.RawContent("echo hi")).Shorthand)
}
