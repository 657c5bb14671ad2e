package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet(t *testing.T) {
	var s StateSet
	assert.True(t, s.Empty())
	assert.False(t, s.Has(0))
	assert.Nil(t, s.IDs())

	s.Add(5)
	s.Add(1)
	s.Add(130)
	s.Add(1)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []StateID{1, 5, 130}, s.IDs())
	assert.True(t, s.Has(130))
	assert.False(t, s.Has(-1))
	assert.Equal(t, "{1,5,130}", s.String())
}

func TestStateSetKeyIgnoresOrder(t *testing.T) {
	a := NewStateSet(3, 1, 2)
	b := NewStateSet(1, 2, 3, 2)
	b.Add(200)
	c := NewStateSet(1, 2, 3)
	assert.Equal(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestStateSetCloneAndIntersects(t *testing.T) {
	a := NewStateSet(1, 2)
	b := a.Clone()
	b.Add(7)
	assert.False(t, a.Has(7))
	assert.True(t, b.Has(7))

	assert.True(t, a.Intersects(NewStateSet(2, 9)))
	assert.False(t, a.Intersects(NewStateSet(3)))
	assert.False(t, a.Intersects(StateSet{}))
	assert.True(t, StateSet{}.Clone().Empty())
}
