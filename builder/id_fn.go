// id_fn.go - deterministic node ID schemes.
//
// Every scheme is a pure function of the index; panics indicate
// configuration errors, never runtime conditions.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node key from its zero-based index. It must be pure:
// the same index always yields the same key.
type IDFn[K comparable] func(idx int) K

// Sequential returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0 at call time.
func Sequential(prefix string) IDFn[string] {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: Sequential index must be >= 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// Alphabetic returns spreadsheet-style column names:
// 0 -> "A", 25 -> "Z", 26 -> "AA", ...
// Panics if idx < 0 at call time.
func Alphabetic() IDFn[string] {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: Alphabetic index must be >= 0, got %d", idx))
		}
		var runes []rune
		for i := idx; i >= 0; i = i/26 - 1 {
			runes = append(runes, rune('A'+i%26))
		}
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}

		return string(runes)
	}
}

// Hex returns prefix + lowercase hexadecimal index, e.g. "n0", "na", "nff".
// Panics if idx < 0 at call time.
func Hex(prefix string) IDFn[string] {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: Hex index must be >= 0, got %d", idx))
		}

		return prefix + strconv.FormatInt(int64(idx), 16)
	}
}
