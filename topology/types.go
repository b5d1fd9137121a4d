// Package topology: sentinel errors.
package topology

import "errors"

// Sentinel errors for topology operations.
var (
	// ErrBasisIndex indicates a basis arena index that is out of range.
	ErrBasisIndex = errors.New("topology: basis index out of range")
)
