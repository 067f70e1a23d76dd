package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtsidehq/courtside-backend/internal/availability"
)

func TestBlocks(t *testing.T) {
	assert.True(t, Record{Status: StatusPending}.Blocks())
	assert.True(t, Record{Status: StatusConfirmed}.Blocks())
	assert.False(t, Record{Status: StatusCancelled}.Blocks())
	assert.False(t, Record{Status: StatusCompleted}.Blocks())
}

func TestBlockingIntervals(t *testing.T) {
	records := []Record{
		{Status: StatusConfirmed, Interval: availability.TimeInterval{Start: 9 * 60, End: 10 * 60}},
		{Status: StatusCancelled, Interval: availability.TimeInterval{Start: 10 * 60, End: 11 * 60}},
		{Status: StatusPending, Interval: availability.TimeInterval{Start: 11 * 60, End: 12 * 60}},
		{Status: StatusCompleted, Interval: availability.TimeInterval{Start: 12 * 60, End: 13 * 60}},
	}

	busy := BlockingIntervals(records)

	assert.Equal(t, []availability.TimeInterval{
		{Start: 9 * 60, End: 10 * 60},
		{Start: 11 * 60, End: 12 * 60},
	}, busy)
}

func TestGroupByResource(t *testing.T) {
	records := []Record{
		{ID: "a", ResourceID: "r1"},
		{ID: "b", ResourceID: "r2"},
		{ID: "c", ResourceID: "r1"},
	}

	grouped := GroupByResource(records)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["r1"], 2)
	assert.Len(t, grouped["r2"], 1)
}
