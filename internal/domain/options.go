// Package domain contains core types for the ASCII art maker.
package domain

import "math"

// DefaultCharset is used when a charset normalizes to nothing
const DefaultCharset = "@%#*+=-:. "

// Range describes a bounded, stepped numeric control
type Range struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Clamp limits v to the range bounds
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Nudge moves v by n steps and clamps the result.
// The result is rounded to the step grid to avoid float drift (0.3 + 0.05*k).
func (r Range) Nudge(v float64, n int) float64 {
	next := v + float64(n)*r.Step
	steps := math.Round((next - r.Min) / r.Step)
	return r.Clamp(r.Min + steps*r.Step)
}

// Control ranges
var (
	WidthRange         = Range{Min: 20, Max: 240, Step: 2, Default: 80}
	ContrastRange      = Range{Min: 0.3, Max: 2.5, Step: 0.05, Default: 1.0}
	VerticalScaleRange = Range{Min: 0.3, Max: 1.5, Step: 0.05, Default: 0.5}
)

// Options controls how an image is converted to ASCII art
type Options struct {
	Width         int
	Charset       string
	Invert        bool
	Contrast      float64
	VerticalScale float64
}

// DefaultOptions returns the options the UI starts with
func DefaultOptions() Options {
	return Options{
		Width:         int(WidthRange.Default),
		Charset:       DefaultCharset,
		Invert:        false,
		Contrast:      ContrastRange.Default,
		VerticalScale: VerticalScaleRange.Default,
	}
}

// Preset is a named charset choice
type Preset struct {
	Name    string
	Charset string
	Custom  bool
}

// Presets lists the charset choices in display order.
// The custom entry takes its charset from user input.
var Presets = []Preset{
	{Name: "classic", Charset: "@%#*+=-:. "},
	{Name: "blocks", Charset: "█▓▒░ "},
	{Name: "binary", Charset: "10"},
	{Name: "custom", Custom: true},
}

// PresetIndex returns the index of the preset matching charset,
// or the custom preset index when none matches
func PresetIndex(charset string) int {
	for i, p := range Presets {
		if !p.Custom && p.Charset == charset {
			return i
		}
	}
	return len(Presets) - 1
}
