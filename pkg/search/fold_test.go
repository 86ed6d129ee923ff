package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/softshop-api/pkg/search"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Camisón", "camison"},
		{"  PERIFÉRICOS  ", "perifericos"},
		{"niño", "nino"},
		{"café con leche", "cafe con leche"},
		{"sin-tildes", "sin-tildes"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, search.Fold(tc.in), "Fold(%q)", tc.in)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, search.Contains("Camisón de algodón", "camison"))
	assert.True(t, search.Contains("Monitor LED 24\"", "MONITOR"))
	assert.False(t, search.Contains("Teclado mecánico", "mouse"))
}
