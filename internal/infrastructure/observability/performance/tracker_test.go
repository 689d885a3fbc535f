package performance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerAggregates(t *testing.T) {
	tr := NewTracker(2)

	ok := tr.StartOperation("like_post")
	ok.SetSuccess(true)
	ok.Complete()
	ok.Complete()

	failed := tr.StartOperation("like_post")
	failed.SetError(errors.New("post not found"))
	failed.Complete()

	tr.StartOperation("flush").Complete()

	stats := tr.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "flush", stats[0].Operation)
	assert.Equal(t, 2, stats[1].Count)
	assert.Equal(t, 1, stats[1].Failures)

	recent := tr.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "post not found", recent[0].Error)
	assert.Equal(t, "flush", recent[1].Operation)
}
