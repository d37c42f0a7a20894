package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, []string]()

	assert.Empty(t, lhm.Keys())

	lhm.Put("3..8 step 2", []string{"3", "5", "7"})
	lhm.Put("'a'..'d' step 2", []string{"a", "c"})
	lhm.Put("3..8 step 2", []string{"3", "5", "7"})

	assert.Equal(t, []string{"3..8 step 2", "'a'..'d' step 2"}, lhm.Keys())
	assert.Equal(t, 2, lhm.Len())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 2)

	assert.Equal(t, map[string]int{"abc": 2}, lhm.hashMap)

	value, ok := lhm.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	_, ok = lhm.Get("def")
	assert.False(t, ok)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, []float64]()
	lhm.Put("double", []float64{4.0, 4.5})
	lhm.Put("abc", []float64{})

	bs, err := lhm.MarshalJSON()
	require.NoError(t, err)

	assert.Equal(t, `{"double":[4,4.5],"abc":[]}`, string(bs))
}
