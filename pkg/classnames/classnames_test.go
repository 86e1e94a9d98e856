package classnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		entries []any
		want    string
	}{
		{"single", []any{"block"}, "block"},
		{"ordered", []any{"block text-foreground", "custom"}, "block text-foreground custom"},
		{"empty caller class", []any{"block", ""}, "block"},
		{"whitespace caller class", []any{"block", "   "}, "block"},
		{"conditional on", []any{"block", When("hidden", true)}, "block hidden"},
		{"conditional off", []any{"block", When("hidden", false)}, "block"},
		{"nothing", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.entries...))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"block", "sm:data-[auto=true]:hidden"}, Tokens("  block  sm:data-[auto=true]:hidden "))
	assert.Empty(t, Tokens(""))
}
