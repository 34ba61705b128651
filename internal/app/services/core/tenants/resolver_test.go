package tenants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSlug(t *testing.T) {
	tests := []struct {
		name     string
		sources  Sources
		expected string
	}{
		{
			name:     "Query Wins Over Everything",
			sources:  Sources{Query: "Pizza-Sol", Cookie: "other", Host: "cafe.pidelocal.es", Path: "/bar"},
			expected: "pizza-sol",
		},
		{
			name:     "Invalid Query Falls Through To Cookie",
			sources:  Sources{Query: "bad slug!", Cookie: " Panaderia ", Host: "cafe.pidelocal.es"},
			expected: "panaderia",
		},
		{
			name:     "Subdomain",
			sources:  Sources{Host: "pizza.pidelocal.es"},
			expected: "pizza",
		},
		{
			name:     "Subdomain With Port",
			sources:  Sources{Host: "cafe.pidelocal.es:8080"},
			expected: "cafe",
		},
		{
			name:     "Www Prefix With Four Labels",
			sources:  Sources{Host: "www.cafe.pidelocal.es"},
			expected: "cafe",
		},
		{
			name:     "Www With Three Labels Resolves To Www",
			sources:  Sources{Host: "www.pidelocal.es", Path: "/menu"},
			expected: "www",
		},
		{
			name:     "Two Label Host Falls Through To Path",
			sources:  Sources{Host: "pidelocal.es", Path: "/Churreria/menu"},
			expected: "churreria",
		},
		{
			name:     "Localhost Path",
			sources:  Sources{Host: "localhost:3000", Path: "/bar-manolo"},
			expected: "bar-manolo",
		},
		{
			name:     "Reserved Path Segment",
			sources:  Sources{Host: "pidelocal.es", Path: "/admin/orders"},
			expected: "",
		},
		{
			name:     "Reserved Api Segment",
			sources:  Sources{Path: "/api/v1/menu"},
			expected: "",
		},
		{
			name:     "Root Path",
			sources:  Sources{Path: "/"},
			expected: "",
		},
		{
			name:     "Nothing",
			sources:  Sources{},
			expected: "",
		},
		{
			name:     "Invalid Path Candidate",
			sources:  Sources{Path: "/caf%C3%A9"},
			expected: "",
		},
		{
			name:     "Too Long Candidate",
			sources:  Sources{Query: strings.Repeat("a", 121), Cookie: "ok"},
			expected: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSlug(tt.sources))
		})
	}
}
