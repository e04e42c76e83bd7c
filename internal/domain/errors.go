package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoImage              = errors.New("no image")
	ErrEmptyText            = errors.New("empty text")
	ErrClipboardUnsupported = errors.New("clipboard not supported")
)

// ImageError represents an error while loading or converting an image
type ImageError struct {
	Op   string // Operation: "load", "decode", "convert", "watch"
	Path string // Optional: source file
	Err  error
}

func (e *ImageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("image %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("image %s: %v", e.Op, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// ClipboardError represents a failed clipboard write
type ClipboardError struct {
	Op  string
	Err error
}

func (e *ClipboardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("clipboard %s failed", e.Op)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}
