package styles

import (
	"testing"

	"github.com/riordanpawley/asciiart/internal/types"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if got := s.Output.GetForeground(); got != Text {
		t.Errorf("output foreground = %v, want %v", got, Text)
	}
}

func TestToast(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		variant types.Variant
		shown   bool
		border  any
	}{
		{"success shown", types.VariantSuccess, true, Green},
		{"failure shown", types.VariantFailure, true, Red},
		{"success hidden", types.VariantSuccess, false, Surface2},
		{"failure hidden", types.VariantFailure, false, Surface2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := s.Toast(tt.variant, tt.shown)
			if got := style.GetBorderTopForeground(); got != tt.border {
				t.Errorf("border = %v, want %v", got, tt.border)
			}
			if style.GetFaint() == tt.shown {
				t.Errorf("faint = %v, want %v", style.GetFaint(), !tt.shown)
			}
		})
	}
}
