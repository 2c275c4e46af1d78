package advanced

import "github.com/pkg/errors"

// The algorithm itself cannot fail; only a caller breaking the input contract
// can. Rather than thread errors through pure geometry, contract violations
// panic with an OverlapError, and the public API recovers to convert it.

type OverlapError struct {
	error
}

// Panic with an OverlapError.
func fatalf(format string, args ...interface{}) {
	panic(OverlapError{errors.Errorf(format, args...)})
}

// Pass recover() to this in a deferred function. It returns the error for an
// OverlapError panic, nil if there was no panic, and re-panics anything else.
func HandleOverlapPanicRecover(r interface{}) error {
	if r != nil {
		if overlapError, ok := r.(OverlapError); ok {
			return overlapError
		}
		panic(r)
	}
	return nil
}
