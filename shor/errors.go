package shor

import (
	"errors"
	"fmt"
)

// Error kinds reported by this package.
//
// All errors returned by exported functions wrap one of these sentinel
// values, and can be tested with errors.Is(). Failures of a single
// factoring attempt (odd order, degenerate square root, trivial factors)
// are reported as *AttemptError; they are retried automatically, and only
// surface to the caller wrapped inside ErrFactorizationFailed.
var (
	// ErrInvalidInput indicates that an argument violates a precondition,
	// e.g. a base which is not a unit modulo N, or a modulus lower than 2.
	ErrInvalidInput = errors.New("shor: invalid input")

	// ErrOrderNotFound indicates that the order search went past its
	// safety bound. With the default bound (N) and a valid unit base,
	// this cannot happen.
	ErrOrderNotFound = errors.New("shor: order not found within bound")

	// ErrAlreadyPrime indicates that the modulus is prime, hence has no
	// nontrivial factor.
	ErrAlreadyPrime = errors.New("shor: modulus is prime")

	// ErrPrimePower indicates that the modulus is a power of an odd prime.
	// Order finding works on such moduli, but the gcd post-processing
	// cannot extract a factor from them (the unit group is cyclic).
	ErrPrimePower = errors.New("shor: modulus is a prime power")

	// ErrOrderParity indicates that the order of the base is odd.
	ErrOrderParity = errors.New("shor: order is odd")

	// ErrDegenerateRoot indicates that a^(r/2) = -1 mod N.
	ErrDegenerateRoot = errors.New("shor: a^(r/2) is -1 mod N")

	// ErrNoNontrivialFactor indicates that both gcd(a^(r/2) - 1, N) and
	// gcd(a^(r/2) + 1, N) are trivial divisors of N.
	ErrNoNontrivialFactor = errors.New("shor: no nontrivial factor")

	// ErrFactorizationFailed indicates that the retry budget has been
	// exhausted without finding a factor.
	ErrFactorizationFailed = errors.New("shor: factorization failed")

	// ErrNotInvertible indicates that the public exponent of an RSA key
	// has no inverse modulo phi(N).
	ErrNotInvertible = errors.New("shor: exponent not invertible modulo phi(N)")
)

// AttemptError describes the failure of a single factoring attempt with
// a given base. Such failures are expected (the algorithm is
// probabilistic) and the caller is expected to retry with another base.
type AttemptError struct {
	Base  uint64
	Order uint64 // 0 if no order was computed
	Err   error
}

func (e *AttemptError) Error() string {
	if e.Order == 0 {
		return fmt.Sprintf("attempt with base %d: %v", e.Base, e.Err)
	}
	return fmt.Sprintf("attempt with base %d (order %d): %v",
		e.Base, e.Order, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// Temporary always returns true: an attempt failure is recovered by
// drawing a new base.
func (e *AttemptError) Temporary() bool {
	return true
}

// IsRecoverable returns true if err describes the failure of a single
// attempt, which a new attempt with another base may overcome.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	type temporary interface {
		Temporary() bool
	}
	var te temporary
	if errors.As(err, &te) {
		return te.Temporary()
	}
	return false
}
