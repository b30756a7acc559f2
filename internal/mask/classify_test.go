package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMask(t *testing.T) {
	for spec, want := range map[string]bool{
		"":                  false,
		"some/path/file.js": false,
		"a/b/file.js":       false,
		`a/b/\*.js`:         false,
		"a/b/*.js":          true,
		"some/path/*":       true,
		"another/**":        true,
		"file?.js":          true,
		"file[0-9].js":      true,
		"src/*.{ts,tsx}":    true,
		`a/\[b\]/*.js`:      true,
	} {
		t.Run(spec, func(t *testing.T) {
			assert.Equal(t, want, IsMask(spec))
		})
	}
}

func TestIsAllMasks(t *testing.T) {
	assert.True(t, IsAllMasks([]string{"a/*", "b/**"}))
	assert.True(t, IsAllMasks([]string{"some/path/*", "another/**"}))
	assert.False(t, IsAllMasks([]string{"a/*", "b.js"}))
	assert.False(t, IsAllMasks([]string{"some/path/file.js", "another/**"}))
	assert.True(t, IsAllMasks(nil))
}
