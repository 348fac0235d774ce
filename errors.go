package bmp2rust

import "fmt"

// UsageError is returned when the tool is invoked incorrectly.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ImageLoadError is returned when an image cannot be opened or decoded.
type ImageLoadError struct {
	File string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("Error reading image: %v", e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}
