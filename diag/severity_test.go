package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/diag"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity diag.Severity
		expected string
	}{
		{diag.Fatal, "fatal"},
		{diag.Error, "error"},
		{diag.Warning, "warning"},
		{diag.Info, "info"},
		{diag.Hint, "hint"},
		{diag.Severity(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverity_IsFailure(t *testing.T) {
	assert.True(t, diag.Fatal.IsFailure())
	assert.True(t, diag.Error.IsFailure())
	assert.False(t, diag.Warning.IsFailure())
	assert.False(t, diag.Info.IsFailure())
	assert.False(t, diag.Hint.IsFailure())
}

func TestSeverity_IsMoreSevereThan(t *testing.T) {
	assert.True(t, diag.Fatal.IsMoreSevereThan(diag.Error))
	assert.True(t, diag.Error.IsMoreSevereThan(diag.Warning))
	assert.False(t, diag.Warning.IsMoreSevereThan(diag.Error))
	assert.False(t, diag.Error.IsMoreSevereThan(diag.Error))
}

func TestSeverity_IsAtLeastAsSevereAs(t *testing.T) {
	assert.True(t, diag.Error.IsAtLeastAsSevereAs(diag.Error))
	assert.True(t, diag.Fatal.IsAtLeastAsSevereAs(diag.Error))
	assert.False(t, diag.Warning.IsAtLeastAsSevereAs(diag.Error))
}
