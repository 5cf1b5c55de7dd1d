// File: errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch via errors.Is.
//   - Constructors attach context with %w wrapping; sentinels stay bare.
//   - Constructors never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates a topology parameter (n) is smaller than the
// minimum the requested constructor supports.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadDimensions indicates a grid was requested with non-positive rows or
// columns.
var ErrBadDimensions = errors.New("builder: grid dimensions must be positive")

// ErrBadSpeed indicates a negative travel speed in the resolved
// configuration; zero means "no travel times".
var ErrBadSpeed = errors.New("builder: travel speed must be non-negative")

// ErrNilConstructor indicates a nil Constructor was passed to Build.
var ErrNilConstructor = errors.New("builder: nil constructor")
