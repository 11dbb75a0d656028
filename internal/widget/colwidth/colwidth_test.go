package colwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSpecs() []Spec {
	return []Spec{
		{Min: 4, Max: 10},
		{Min: 6, Max: 6, Flex: true},
		{Min: 5},
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  []int
	}{
		{"grows first column to fill", 20, []int{7, 6, 5}},
		{"hides trailing column", 12, []int{5, 6, 0}},
		{"flex absorbs leftover", 40, []int{10, 23, 5}},
		{"too narrow for anything", 3, []int{0, 0, 0}},
		{"exact minimum", 17, []int{4, 6, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(testSpecs(), tt.total)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, used(got), tt.total)
		})
	}
}

func TestAllocate_HidesEverythingAfterFirstMiss(t *testing.T) {
	specs := []Spec{{Min: 5}, {Min: 20}, {Min: 1}}
	assert.Equal(t, []int{5, 0, 0}, Allocate(specs, 10))
}

func TestAllocate_FlexRemainderGoesLeft(t *testing.T) {
	specs := []Spec{{Min: 1, Flex: true}, {Min: 1, Flex: true}}
	// 1 + 1 + 1 separator = 3; 4 left over split 2/2; 5 left over split 3/2.
	assert.Equal(t, []int{3, 3}, Allocate(specs, 7))
	assert.Equal(t, []int{4, 3}, Allocate(specs, 8))
}

func TestState_CachesPerWidth(t *testing.T) {
	var s State
	first := s.Calculate(testSpecs(), 20)
	assert.Equal(t, []int{7, 6, 5}, first)

	// Same width and column count: cached widths are returned even though
	// the specs differ.
	other := []Spec{{Min: 1}, {Min: 1}, {Min: 1}}
	assert.Equal(t, first, s.Calculate(other, 20))

	// Width change recomputes.
	assert.Equal(t, []int{1, 1, 1}, Allocate(other, 5))
	assert.Equal(t, []int{1, 1, 1}, s.Calculate(other, 5))

	// Column count change recomputes at the same width.
	assert.Equal(t, []int{5, 0}, s.Calculate([]Spec{{Min: 5}, {Min: 5}}, 5))
}

// used returns the cells consumed by widths including separators.
func used(widths []int) int {
	n, visible := 0, 0
	for _, w := range widths {
		if w <= 0 {
			continue
		}
		n += w
		visible++
	}
	if visible > 1 {
		n += (visible - 1) * Separator
	}
	return n
}

func TestState_Clone(t *testing.T) {
	var s State
	s.Calculate(testSpecs(), 20)

	c := s.Clone()
	c.Widths[0] = 0
	assert.Equal(t, []int{7, 6, 5}, s.Widths)
	assert.Equal(t, []int{7, 6, 5}, s.Calculate(testSpecs(), 20), "clone keeps cache validity separate")
}
