package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/diag"
	"github.com/corvid-data/valuegen/location"
)

func TestNewIssue_Build(t *testing.T) {
	span := location.Point(location.NewSourceID("user.age"), 1, 5)
	issue := diag.NewIssue(diag.Error, diag.E_INVALID_RANGE, "lo must be < hi").
		WithSpan(span).
		WithHint("swap lo and hi").
		WithDetail(diag.DetailKeyName, "user.age").
		Build()

	assert.Equal(t, diag.Error, issue.Severity())
	assert.Equal(t, diag.E_INVALID_RANGE, issue.Code())
	assert.Equal(t, "lo must be < hi", issue.Message())
	assert.Equal(t, "swap lo and hi", issue.Hint())
	assert.True(t, issue.HasSpan())
	assert.Equal(t, span, issue.Span())
	assert.Equal(t, []diag.Detail{{Key: diag.DetailKeyName, Value: "user.age"}}, issue.Details())
	assert.True(t, issue.IsValid())
	assert.False(t, issue.IsZero())
}

func TestNewIssue_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { diag.NewIssue(diag.Error, diag.Code{}, "msg") })
	assert.Panics(t, func() { diag.NewIssue(diag.Error, diag.E_PARSE, "") })
	assert.Panics(t, func() { diag.NewIssue(diag.Severity(255), diag.E_PARSE, "msg") })
}

func TestIssue_IsZero(t *testing.T) {
	var zero diag.Issue
	assert.True(t, zero.IsZero())

	issue := diag.NewIssue(diag.Error, diag.E_PARSE, "bad").Build()
	assert.False(t, issue.IsZero())
}

func TestIssue_WithExpectedGot(t *testing.T) {
	issue := diag.NewIssue(diag.Error, diag.E_ARITY, "wrong arity").
		WithExpectedGot("0 or 4", "2").
		Build()

	assert.Equal(t, []diag.Detail{
		{Key: diag.DetailKeyExpected, Value: "0 or 4"},
		{Key: diag.DetailKeyGot, Value: "2"},
	}, issue.Details())
}

func TestFromIssue_Augments(t *testing.T) {
	base := diag.NewIssue(diag.Error, diag.E_ARITY, "wrong arity").Build()
	augmented := diag.FromIssue(base).WithDetail(diag.DetailKeyFunction, "normal").Build()

	assert.Empty(t, base.Details())
	assert.Equal(t, []diag.Detail{{Key: diag.DetailKeyFunction, Value: "normal"}}, augmented.Details())
	assert.Equal(t, base.Message(), augmented.Message())
}

func TestFromIssue_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { diag.FromIssue(diag.Issue{}) })
}

func TestIssue_Clone_Independent(t *testing.T) {
	issue := diag.NewIssue(diag.Error, diag.E_PARSE, "bad").
		WithDetail("a", "1").
		Build()

	clone := issue.Clone()
	details := clone.Details()
	details[0].Value = "mutated"

	assert.Equal(t, "1", issue.Details()[0].Value)
}
