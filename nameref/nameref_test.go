package nameref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aponysus/nameref/nameref"
)

type device struct {
	nameref.Registrable
	port int
}

func TestFacade_UsesDefaultRegistry(t *testing.T) {
	d := &device{port: 8080}
	d.Init(d, "facade.device")

	got, ok := nameref.Find("facade.device")
	require.True(t, ok)
	assert.Same(t, d, got)
	assert.Equal(t, 8080, nameref.Get("facade.device").(*device).port)
	assert.True(t, nameref.Contains("facade.device"))
	assert.Contains(t, nameref.Names(), "facade.device")

	require.NoError(t, d.Close())

	_, ok = nameref.Find("facade.device")
	assert.False(t, ok)
	assert.False(t, nameref.Contains("facade.device"))
	assert.Panics(t, func() { nameref.Get("facade.device") })
}

func TestFacade_RenameAndMove(t *testing.T) {
	x := &device{}
	x.Init(x, "facade.x")
	y := &device{}
	y.InitFrom(y, &x.Registrable)
	defer y.Close()

	assert.Same(t, y, nameref.Get("facade.x"))

	y.ResetName("facade.y")
	assert.False(t, nameref.Contains("facade.x"))
	assert.Same(t, y, nameref.Get("facade.y"))
}
