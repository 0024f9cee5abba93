package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSetBasics(t *testing.T) {
	s := NewKindSet(Plains, Forest)

	assert.Equal(t, 2, s.Count())
	assert.True(t, s.Contains(Plains))
	assert.False(t, s.Contains(Desert))
	assert.Equal(t, []Kind{Plains, Forest}, s.Kinds())
}

func TestFullSetCoversCatalog(t *testing.T) {
	assert.Equal(t, KindCount, FullSet.Count())
	for _, k := range Kinds() {
		assert.True(t, FullSet.Contains(k))
	}
}

func TestIntersect(t *testing.T) {
	land := NewKindSet(Plains, HillsLow, Forest)
	wet := NewKindSet(WaterDeep, WaterShallow, Plains)

	got := land.Intersect(wet)
	assert.Equal(t, NewKindSet(Plains), got)
	assert.True(t, land.Intersect(NewKindSet(Desert)).Empty())
}

func TestSingle(t *testing.T) {
	k, ok := NewKindSet(Mountains).Single()
	assert.True(t, ok)
	assert.Equal(t, Mountains, k)

	_, ok = NewKindSet(Mountains, Plains).Single()
	assert.False(t, ok)

	_, ok = KindSet(0).Single()
	assert.False(t, ok)
}
