package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/diag"
)

func TestAllCodes_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range diag.AllCodes() {
		assert.False(t, seen[c.String()], "duplicate code %s", c)
		seen[c.String()] = true
	}
	assert.NotEmpty(t, seen)
}

func TestCodesByCategory(t *testing.T) {
	semantic := diag.CodesByCategory(diag.CategorySemantic)
	assert.NotEmpty(t, semantic)
	for _, c := range semantic {
		assert.Equal(t, diag.CategorySemantic, c.Category())
	}

	sentinel := diag.CodesByCategory(diag.CategorySentinel)
	assert.Contains(t, sentinel, diag.E_INTERNAL)
}

func TestCode_IsZero(t *testing.T) {
	var zero diag.Code
	assert.True(t, zero.IsZero())
	assert.False(t, diag.E_PARSE.IsZero())
}

func TestCodeCategory_String(t *testing.T) {
	assert.Equal(t, "sentinel", diag.CategorySentinel.String())
	assert.Equal(t, "syntax", diag.CategorySyntax.String())
	assert.Equal(t, "semantic", diag.CategorySemantic.String())
	assert.Equal(t, "unknown", diag.CodeCategory(255).String())
}
