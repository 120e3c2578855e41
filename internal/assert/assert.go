// Package assert is the single fail-fast validation layer for kronbatch.
//
// Every invariant violation in the core (shape mismatch, double slot
// assignment, under-sized workspace, invalid dimension/degree) indicates a
// defect in the caller's integration, not a data-dependent runtime condition.
// Checks therefore panic instead of returning errors, and all of them are
// funneled through this package so a release build can elide them wholesale
// with the "kronbatch_nochecks" build tag.
package assert

import "fmt"

// fail aborts with a package-prefixed message. Kept out of the hot path so
// That/Index inline when checks are enabled.
func fail(format string, args ...any) {
	panic("kronbatch/" + fmt.Sprintf(format, args...))
}

// Thatf panics with the formatted message when cond is false.
// The message should start with the calling package name, e.g.
// "batch: entry %d already assigned".
func Thatf(cond bool, format string, args ...any) {
	if checksEnabled && !cond {
		fail(format, args...)
	}
}

// That panics with the given message when cond is false.
func That(cond bool, msg string) {
	if checksEnabled && !cond {
		fail("%s", msg)
	}
}

// Index panics unless 0 <= i < n.
func Index(i, n int, what string) {
	if checksEnabled && (i < 0 || i >= n) {
		fail("%s: index %d out of range [0, %d)", what, i, n)
	}
}

// Positive panics unless v > 0.
func Positive(v int, what string) {
	if checksEnabled && v <= 0 {
		fail("%s must be > 0, got %d", what, v)
	}
}
