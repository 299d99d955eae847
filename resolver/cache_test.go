package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetAbsent(t *testing.T) {
	c := &cache[string]{}
	_, found := c.get("x")
	assert.False(t, found)
}

func TestCacheMergeThenGet(t *testing.T) {
	c := &cache[string]{}
	c.merge(map[string]result{
		"resolved":   {value: "v", ok: true},
		"unresolved": {value: "", ok: false},
	})

	got, found := c.get("resolved")
	assert.True(t, found)
	assert.Equal(t, result{value: "v", ok: true}, got)

	got, found = c.get("unresolved")
	assert.True(t, found, "a negative result must still be present")
	assert.False(t, got.ok)
}
