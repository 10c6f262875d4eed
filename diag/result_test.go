package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/diag"
)

func TestOK_Result(t *testing.T) {
	res := diag.OK()
	assert.True(t, res.OK())
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, "OK", res.String())
}

func TestResult_SeverityCounts(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	c.Collect(issueAt(t, diag.Error, 1, 1, "e1"))
	c.Collect(issueAt(t, diag.Warning, 1, 1, "w1"))
	c.Collect(issueAt(t, diag.Warning, 2, 1, "w2"))

	counts := c.Result().SeverityCounts()
	assert.Equal(t, 1, counts.Errors)
	assert.Equal(t, 2, counts.Warnings)
	assert.Equal(t, 0, counts.Fatal)
}

func TestResult_ErrorsSliceAndWarningsSlice(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	c.Collect(issueAt(t, diag.Fatal, 1, 1, "fatal"))
	c.Collect(issueAt(t, diag.Error, 1, 1, "err"))
	c.Collect(issueAt(t, diag.Warning, 1, 1, "warn"))

	res := c.Result()
	assert.Len(t, res.ErrorsSlice(), 2)
	assert.Len(t, res.WarningsSlice(), 1)
}

func TestResult_Error_SatisfiesErrorInterface(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	c.Collect(issueAt(t, diag.Error, 1, 1, "boom"))
	res := c.Result()

	var err error = res
	assert.Contains(t, err.Error(), "E_PARSE")
	assert.Contains(t, err.Error(), "boom")
}

func TestResult_IssuesAtLeastAsSevereAsSlice(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	c.Collect(issueAt(t, diag.Fatal, 1, 1, "fatal"))
	c.Collect(issueAt(t, diag.Warning, 1, 1, "warn"))
	c.Collect(issueAt(t, diag.Hint, 1, 1, "hint"))

	res := c.Result()
	atLeastWarning := res.IssuesAtLeastAsSevereAsSlice(diag.Warning)
	assert.Len(t, atLeastWarning, 2)
}

func TestResult_LimitReachedPropagates(t *testing.T) {
	c := diag.NewCollector(1)
	c.Collect(issueAt(t, diag.Error, 1, 1, "kept"))
	c.Collect(issueAt(t, diag.Error, 2, 1, "dropped"))

	res := c.Result()
	assert.True(t, res.LimitReached())
	assert.Equal(t, 1, res.DroppedCount())
}
