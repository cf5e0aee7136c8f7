// Package utils holds helpers shared by the cache packages.
package utils

import "log"

// MustBeTrue aborts the process when condition does not hold. It guards
// invariants whose violation means internal state is already corrupt.
func MustBeTrue(condition bool, msg string) {
	if !condition {
		log.Fatalf("assertion failed: %s", msg)
	}
}
