// File: id_fn.go — vertex-identifier schemes for graph constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index. It must be
// pure and deterministic: the same idx always yields the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) where d is the digit count. Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z". Panics outside that range.
// Complexity: O(1)
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// gridID is the fixed id scheme for Grid vertices: "r,c" in row-major order.
func gridID(row, col int) string {
	return strconv.Itoa(row) + "," + strconv.Itoa(col)
}
