package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "empty collapses to everyday", in: []string{}, want: []string{"Everyday"}},
		{name: "nil collapses to everyday", in: nil, want: []string{"Everyday"}},
		{
			name: "full working week collapses",
			in:   []string{"Saturday", "Monday", "Wednesday", "Tuesday", "Friday", "Thursday"},
			want: []string{"Everyday"},
		},
		{name: "sentinel kept canonical", in: []string{"Everyday"}, want: []string{"Everyday"}},
		{
			name: "legacy sentinel spelling",
			in:   []string{"Every day", "Monday"},
			want: []string{"Everyday"},
		},
		{
			name: "subset sorted by weekday order",
			in:   []string{"Friday", "Monday", "Wednesday"},
			want: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			name: "duplicates dropped",
			in:   []string{"Monday", "Monday", "Tuesday"},
			want: []string{"Monday", "Tuesday"},
		},
		{
			name: "unknown labels silently dropped",
			in:   []string{"Funday", "Tuesday", "Sunday"},
			want: []string{"Tuesday"},
		},
		{
			name: "only unknown labels collapse to everyday",
			in:   []string{"Sunday", "Holiday"},
			want: []string{"Everyday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestExpand(t *testing.T) {
	all := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	assert.Equal(t, all, Expand([]string{"Everyday"}))
	assert.Equal(t, all, Expand([]string{"Every day"}))
	assert.Equal(t, []string{"Monday", "Friday"}, Expand([]string{"Monday", "Friday"}))
}

// Normalize(Expand(Normalize(S))) == Normalize(S) для любого подмножества.
func TestNormalizeExpandIdempotent(t *testing.T) {
	subsets := [][]string{
		{},
		{"Monday"},
		{"Tuesday", "Saturday"},
		{"Monday", "Wednesday", "Friday"},
		{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		{"Everyday"},
		{"Friday", "Funday"},
	}

	for _, s := range subsets {
		first := Normalize(s)
		again := Normalize(Expand(first))
		require.Equal(t, first, again, "subset %v", s)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"Everyday"}, "Wednesday"))
	assert.False(t, Contains([]string{"Everyday"}, "Sunday"))
	assert.True(t, Contains([]string{"Monday", "Friday"}, "Friday"))
	assert.False(t, Contains([]string{"Monday", "Friday"}, "Tuesday"))
}

func TestToday(t *testing.T) {
	// 2026-08-30 воскресенье, 2026-08-31 понедельник
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sunday", Today(sunday))
	assert.Equal(t, "Monday", Today(monday))
}
