package domain

import (
	"errors"
	"testing"
)

func TestImageError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ImageError
		want string
	}{
		{
			name: "with path",
			err:  ImageError{Op: "load", Path: "cat.png", Err: errors.New("no such file")},
			want: "image load [cat.png]: no such file",
		},
		{
			name: "without path",
			err:  ImageError{Op: "convert", Err: ErrNoImage},
			want: "image convert: no image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ImageError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageError_Unwrap(t *testing.T) {
	err := &ImageError{Op: "convert", Err: ErrNoImage}

	if !errors.Is(err, ErrNoImage) {
		t.Errorf("errors.Is(%v, ErrNoImage) = false, want true", err)
	}
}

func TestClipboardError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ClipboardError
		want string
	}{
		{
			name: "with underlying error",
			err:  ClipboardError{Op: "write", Err: errors.New("exit status 1")},
			want: "clipboard write: exit status 1",
		},
		{
			name: "minimal",
			err:  ClipboardError{Op: "write"},
			want: "clipboard write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ClipboardError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClipboardError_Unwrap(t *testing.T) {
	err := &ClipboardError{Op: "write", Err: ErrClipboardUnsupported}

	if unwrapped := err.Unwrap(); unwrapped != ErrClipboardUnsupported {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrClipboardUnsupported)
	}
}
