package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(opens, closes TimeOfDay) *OperatingWindow {
	return &OperatingWindow{IsOpen: true, Opens: opens, Closes: closes}
}

func TestGenerate(t *testing.T) {
	gen := NewSlotGenerator()

	tests := []struct {
		name     string
		window   *OperatingWindow
		duration int
		want     []TimeInterval
	}{
		{
			name:     "two hour slots across a 09:00-21:00 day",
			window:   window(9*60, 21*60),
			duration: 120,
			want: []TimeInterval{
				{9 * 60, 11 * 60}, {10 * 60, 12 * 60}, {11 * 60, 13 * 60},
				{12 * 60, 14 * 60}, {13 * 60, 15 * 60}, {14 * 60, 16 * 60},
				{15 * 60, 17 * 60}, {16 * 60, 18 * 60}, {17 * 60, 19 * 60},
				{18 * 60, 20 * 60}, {19 * 60, 21 * 60},
			},
		},
		{
			name:     "last slot may end exactly at closing",
			window:   window(9*60, 11*60),
			duration: 60,
			want:     []TimeInterval{{9 * 60, 10 * 60}, {10 * 60, 11 * 60}},
		},
		{
			name:     "window shorter than duration yields no slots",
			window:   window(9*60, 10*60),
			duration: 120,
			want:     nil,
		},
		{
			name:     "closed day yields no slots",
			window:   &OperatingWindow{IsOpen: false},
			duration: 60,
			want:     nil,
		},
		{
			name:     "zero duration falls back to the default hour",
			window:   window(9*60, 11*60),
			duration: 0,
			want:     []TimeInterval{{9 * 60, 10 * 60}, {10 * 60, 11 * 60}},
		},
		{
			name:     "negative duration falls back to the default hour",
			window:   window(9*60, 11*60),
			duration: -30,
			want:     []TimeInterval{{9 * 60, 10 * 60}, {10 * 60, 11 * 60}},
		},
		{
			name:     "slot can end at midnight",
			window:   window(22*60, MinutesPerDay),
			duration: 60,
			want:     []TimeInterval{{22 * 60, 23 * 60}, {23 * 60, MinutesPerDay}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gen.Generate(tt.window, tt.duration))
		})
	}
}

func TestGenerateFallbackWindow(t *testing.T) {
	gen := NewSlotGenerator()

	slots := gen.Generate(nil, 60)
	require.NotEmpty(t, slots, "unconfigured resources still get a grid")

	assert.Equal(t, DefaultOperatingWindow.Opens, slots[0].Start)
	assert.Equal(t, DefaultOperatingWindow.Closes, slots[len(slots)-1].End)
	// 06:00 through 22:00 starts, hourly.
	assert.Len(t, slots, 17)
}

func TestGenerateOrderedNoDuplicates(t *testing.T) {
	gen := NewSlotGenerator()

	slots := gen.Generate(window(6*60, 23*60), 90)
	seen := map[TimeInterval]bool{}
	for i, s := range slots {
		assert.False(t, seen[s], "duplicate slot %v", s)
		seen[s] = true
		if i > 0 {
			assert.Greater(t, s.Start, slots[i-1].Start, "slots must ascend by start time")
		}
	}
}

// A shorter requested duration never yields fewer slots than a longer one on
// the same window.
func TestGenerateSlotCountMonotonicity(t *testing.T) {
	gen := NewSlotGenerator()
	w := window(9*60, 21*60)

	oneHour := len(gen.Generate(w, 60))
	threeHours := len(gen.Generate(w, 180))

	assert.GreaterOrEqual(t, oneHour, threeHours)
}
