package fetcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghtree/ghtree/pkg/fetcher"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty is repository root", input: "", want: ""},
		{name: "bare separator is repository root", input: "/", want: ""},
		{name: "dot is repository root", input: ".", want: ""},
		{name: "relative path unchanged", input: "src/lib", want: "src/lib"},
		{name: "absolute-style loses leading separator", input: "/src/lib", want: "src/lib"},
		{name: "doubled separators collapsed", input: "//src//lib", want: "src/lib"},
		{name: "trailing separator removed", input: "src/lib/", want: "src/lib"},
		{name: "dot segments cleaned", input: "src/./lib", want: "src/lib"},
		{name: "parent segments resolved", input: "src/tmp/../lib", want: "src/lib"},
		{name: "single component", input: "README.md", want: "README.md"},
		{name: "absolute single component", input: "/README.md", want: "README.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fetcher.NormalizePath(tt.input))
		})
	}
}
