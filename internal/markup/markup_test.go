package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectSingleSVG(t *testing.T) {
	elements, err := Inspect(`<svg class="block  custom" data-auto="true" viewBox="0 0 126 126" width="25"><path d="M0 0Z"></path><path d="M1 1Z"></path></svg>`)
	require.NoError(t, err)
	require.Len(t, elements, 1)

	e := elements[0]
	assert.Equal(t, []string{"block", "custom"}, e.Classes)
	assert.True(t, e.HasClass("custom"))
	assert.False(t, e.HasClass("hidden"))
	assert.True(t, e.Has("data-auto"))
	assert.True(t, e.Has("viewBox"))
	assert.Equal(t, "0 0 126 126", e.Attr("viewBox"))
	assert.Equal(t, "25", e.Attr("width"))
	assert.Equal(t, 2, e.Paths)
	assert.False(t, e.Wrapped)
}

func TestInspectWrappedPair(t *testing.T) {
	elements, err := Inspect(`<div><svg viewBox="0 0 126 126"></svg><svg viewBox="0 0 384 96"></svg></div>`)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	assert.True(t, elements[0].Wrapped)
	assert.True(t, elements[1].Wrapped)
	assert.Equal(t, "0 0 384 96", elements[1].Attr("viewbox"))
}

func TestInspectEmpty(t *testing.T) {
	elements, err := Inspect("")
	require.NoError(t, err)
	assert.Empty(t, elements)
}
