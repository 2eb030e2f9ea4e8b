package parcom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_Contains(t *testing.T) {
	tests := []struct {
		name     string
		parent   Span
		other    Span
		expected bool
	}{
		{
			name:     "fully contained span",
			parent:   NewSpan(0, 10),
			other:    NewSpan(2, 8),
			expected: true,
		},
		{
			name:     "identical spans",
			parent:   NewSpan(5, 15),
			other:    NewSpan(5, 15),
			expected: true,
		},
		{
			name:     "other starts at same position",
			parent:   NewSpan(0, 10),
			other:    NewSpan(0, 5),
			expected: true,
		},
		{
			name:     "other ends at same position",
			parent:   NewSpan(0, 10),
			other:    NewSpan(5, 10),
			expected: true,
		},
		{
			name:     "other starts before parent",
			parent:   NewSpan(5, 15),
			other:    NewSpan(3, 10),
			expected: false,
		},
		{
			name:     "other ends after parent",
			parent:   NewSpan(5, 15),
			other:    NewSpan(10, 20),
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.parent.Contains(tt.other))
		})
	}
}

func TestSpan_New(t *testing.T) {
	s := NewSpan(3, 10)
	assert.Equal(t, 3, s.Start)
	assert.Equal(t, 10, s.End)
	assert.Equal(t, 7, s.Len())
	assert.False(t, s.IsEmpty())

	assert.Panics(t, func() { NewSpan(10, 3) })

	_, ok := TrySpan(10, 3)
	assert.False(t, ok)

	s2, ok := TrySpan(4, 4)
	assert.True(t, ok)
	assert.True(t, s2.IsEmpty())
	assert.Equal(t, 0, s2.Len())
}

func TestSpan_Text(t *testing.T) {
	input := "an example string"
	s := NewSpan(3, 10)
	assert.Equal(t, "example", s.Text(input))
}

func TestSpan_String(t *testing.T) {
	assert.Equal(t, "3..10", NewSpan(3, 10).String())
	assert.Equal(t, "4", NewSpan(4, 4).String())
}
