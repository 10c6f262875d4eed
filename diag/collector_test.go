package diag_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/diag"
	"github.com/corvid-data/valuegen/location"
)

func issueAt(t *testing.T, sev diag.Severity, line, col int, msg string) diag.Issue {
	t.Helper()
	span := location.Point(location.NewSourceID("src"), line, col)
	return diag.NewIssue(sev, diag.E_PARSE, msg).WithSpan(span).Build()
}

func TestCollector_CollectAndResult(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	c.Collect(issueAt(t, diag.Error, 1, 1, "first"))
	c.Collect(issueAt(t, diag.Fatal, 2, 1, "second"))

	assert.True(t, c.HasErrors())
	assert.True(t, c.HasFatal())
	assert.False(t, c.OK())
	assert.Equal(t, 2, c.Len())

	res := c.Result()
	assert.False(t, res.OK())
	assert.Equal(t, 2, res.Len())
}

func TestCollector_Collect_PanicsOnInvalidIssue(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	assert.Panics(t, func() { c.Collect(diag.Issue{}) })
}

func TestCollector_Result_SortedDeterministically(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	c.Collect(issueAt(t, diag.Error, 3, 1, "later"))
	c.Collect(issueAt(t, diag.Error, 1, 5, "earlier-b"))
	c.Collect(issueAt(t, diag.Error, 1, 1, "earliest"))

	res := c.Result()
	messages := make([]string, 0, res.Len())
	for issue := range res.Issues() {
		messages = append(messages, issue.Message())
	}
	assert.Equal(t, []string{"earliest", "earlier-b", "later"}, messages)
}

func TestCollector_LimitReached(t *testing.T) {
	c := diag.NewCollector(1)
	c.Collect(issueAt(t, diag.Error, 1, 1, "kept"))
	c.Collect(issueAt(t, diag.Error, 2, 1, "dropped"))

	assert.True(t, c.LimitReached())
	assert.Equal(t, 1, c.DroppedCount())
	assert.Equal(t, 1, c.Len())
}

func TestCollector_Merge(t *testing.T) {
	src := diag.NewCollectorUnlimited()
	src.Collect(issueAt(t, diag.Warning, 1, 1, "warn"))

	dst := diag.NewCollectorUnlimited()
	dst.Collect(issueAt(t, diag.Error, 1, 1, "err"))
	dst.Merge(src.Result())

	assert.Equal(t, 2, dst.Len())
}

func TestCollector_ConcurrentCollect(t *testing.T) {
	c := diag.NewCollectorUnlimited()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Collect(issueAt(t, diag.Error, i+1, 1, "concurrent"))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
