package snowflake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIsUnique(t *testing.T) {
	seen := make(map[int64]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := Next()
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestTempName(t *testing.T) {
	a := TempName("outfit", ".png")
	b := TempName("outfit", ".png")
	assert.True(t, strings.HasPrefix(a, "outfit_"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotEqual(t, a, b)
}
