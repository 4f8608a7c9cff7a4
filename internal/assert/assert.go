// Package assert provides the single invariant-checking primitive used
// throughout the tree engine. A failed assertion means the tree's internal
// structure is broken or the caller has misused the API — both are bugs,
// never recoverable errors.
package assert

import "fmt"

// Assert panics with a formatted message if the given condition is false.
func Assert(condition bool, msg string, v ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+msg, v...))
	}
}
