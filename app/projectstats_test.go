package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeProject(t *testing.T) {
	out := SummarizeProject("acme/shop", "^4.4", []string{"spark", "composer.json"})
	for _, want := range []string{"acme/shop", "CodeIgniter ^4.4", "spark", "composer.json", "•"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRenderItemsHorizontallyWraps(t *testing.T) {
	out := RenderItemsHorizontally([]string{"a", "b", "c", "d", "e"}, 2)
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Empty(t, RenderItemsHorizontally(nil, 3))
}
