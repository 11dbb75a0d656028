package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "Contains(%d, %d)", tt.x, tt.y)
	}
	assert.False(t, Rect{}.Contains(0, 0), "empty rect contains nothing")
}

func TestRect_Inner(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 8, Height: 3}, r.Inner(1))
	assert.True(t, r.Inner(3).IsEmpty())
}

func TestRect_ZeroValue(t *testing.T) {
	var r Rect
	assert.True(t, r.IsEmpty())
	assert.Equal(t, "0x0+0+0", r.String())
}

func TestEventResult_String(t *testing.T) {
	assert.Equal(t, "NoRedraw", NoRedraw.String())
	assert.Equal(t, "Redraw", Redraw.String())
	assert.Equal(t, "Quit", Quit.String())
	assert.Equal(t, "Unknown", EventResult(42).String())
}
