// Package vfm reads the CALIPSO Level-2 Vertical Feature Mask product.
package vfm

import "errors"

// Common errors
var (
	ErrClosed       = errors.New("reader is closed")
	ErrDatasetShape = errors.New("dataset has unexpected shape")
	ErrTimestamp    = errors.New("invalid profile timestamp")
)
