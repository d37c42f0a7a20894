package ds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpJSON(t *testing.T) {
	assert.Equal(t, `["a","c"]`, DumpJSON([]string{"a", "c"}))
	assert.Contains(t, DumpJSON(math.Inf(1)), "DumpJSON error")
}
