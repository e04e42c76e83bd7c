package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", 10, 20},
		{"above max", 300, 240},
		{"inside", 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WidthRange.Clamp(tt.in))
		})
	}
}

func TestRange_Nudge(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		start float64
		steps int
		want  float64
	}{
		{"width up", WidthRange, 80, 1, 82},
		{"width down", WidthRange, 80, -3, 74},
		{"width clamps at max", WidthRange, 240, 1, 240},
		{"contrast up", ContrastRange, 1.0, 1, 1.05},
		{"contrast clamps at min", ContrastRange, 0.3, -1, 0.3},
		{"vertical scale up twice", VerticalScaleRange, 0.5, 2, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.r.Nudge(tt.start, tt.steps), 1e-9)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 80, opts.Width)
	assert.Equal(t, DefaultCharset, opts.Charset)
	assert.False(t, opts.Invert)
	assert.Equal(t, 1.0, opts.Contrast)
	assert.Equal(t, 0.5, opts.VerticalScale)
}

func TestPresetIndex(t *testing.T) {
	assert.Equal(t, 0, PresetIndex("@%#*+=-:. "))
	assert.Equal(t, 1, PresetIndex("█▓▒░ "))
	assert.Equal(t, 2, PresetIndex("10"))
	assert.Equal(t, 3, PresetIndex("abc"), "unknown charset falls back to custom")
}
