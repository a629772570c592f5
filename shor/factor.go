package shor

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var errNoUnit = errors.New("shor: no unit base found")

// Default number of bases tried by [Factor] before giving up. For an odd
// N with at least two distinct prime factors, each attempt succeeds with
// probability at least 1/2.
const DefaultMaxAttempts = 20

// Maximum number of draws to obtain a base coprime with N, within a
// single attempt.
const maxBaseDraws = 64

// PrimePowerPolicy selects how [Factor] handles a modulus N = p^k for an
// odd prime p and k >= 2.
type PrimePowerPolicy int

const (
	// Detect prime powers before any order search and fail with
	// ErrPrimePower.
	PrimePowerDetect PrimePowerPolicy = iota

	// Run the order-finding attempts anyway. For odd prime powers the
	// unit group is cyclic, so a^(r/2) is always -1 when r is even:
	// every attempt fails and ErrFactorizationFailed is eventually
	// returned.
	PrimePowerRetry
)

// Options tunes the behaviour of [Factor] and [AttemptFactor]. A nil
// *Options, or zero fields, select the defaults.
type Options struct {
	// Base to use for the first attempt (0 to draw it at random). It
	// must verify 1 < Base < N and gcd(Base, N) = 1. Subsequent attempts
	// use random bases. It is ignored when N is even.
	Base uint64

	// Maximum number of attempts (0 for DefaultMaxAttempts).
	MaxAttempts int

	// Bound on the order search (0 for N).
	MaxOrder uint64

	// Random source for base selection (nil to use the OS RNG). Use
	// NewSeededReader for reproducible runs.
	Rand io.Reader

	// Handling of prime power moduli.
	PrimePowers PrimePowerPolicy
}

// Result of a successful factorization. P*Q = N, with 1 < P, Q < N.
// Base and Order describe the successful attempt; they are both zero
// when N was even and 2 was extracted directly.
type Result struct {
	P        uint64
	Q        uint64
	Base     uint64
	Order    uint64
	Attempts int
}

// Attempt to split n into two nontrivial factors, using classical order
// finding. Returned values verify p*q = n and 1 < p, q < n; p is the
// factor extracted by the gcd step, and q = n/p (in particular, p and q
// are not necessarily prime, nor sorted).
//
// An error wrapping ErrInvalidInput is returned if n < 2 or the provided
// base is invalid; ErrAlreadyPrime if n is prime; ErrPrimePower if n is
// an odd prime power (unless opts selects PrimePowerRetry); and
// ErrFactorizationFailed if all attempts failed.
func AttemptFactor(n uint64, opts *Options) (p, q uint64, err error) {
	res, err := Factor(n, opts)
	if err != nil {
		return 0, 0, err
	}
	return res.P, res.Q, nil
}

// Similar to [AttemptFactor], but also reports the base and order of
// the successful attempt, and the number of attempts.
func Factor(n uint64, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: modulus %d is lower than 2",
			ErrInvalidInput, n)
	}
	if is_prime(n) {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyPrime, n)
	}
	if n&1 == 0 {
		log.Debugf("shor: %d is even, extracting 2", n)
		return &Result{P: 2, Q: n >> 1}, nil
	}
	if p, k := prime_power(n); k != 0 && opts.PrimePowers == PrimePowerDetect {
		return nil, fmt.Errorf("%w: %d = %d^%d", ErrPrimePower, n, p, k)
	}
	if opts.Base != 0 {
		if opts.Base < 2 {
			return nil, fmt.Errorf("%w: base %d is not in [2, %d]",
				ErrInvalidInput, opts.Base, n-1)
		}
		if err := check_unit(opts.Base, n); err != nil {
			return nil, err
		}
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	bound := opts.MaxOrder
	if bound == 0 {
		bound = n
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.Reader
	}

	m := new_modulus(n)
	var last error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		a := opts.Base
		if attempt > 1 || a == 0 {
			var err error
			a, err = draw_base(rng, n)
			if err != nil {
				if !IsRecoverable(err) {
					return nil, err
				}
				log.Debugf("shor: N=%d attempt %d: %v", n, attempt, err)
				last = err
				continue
			}
		}

		res, err := attempt_base(m, a, bound)
		if err == nil {
			res.Attempts = attempt
			return res, nil
		}
		if !IsRecoverable(err) {
			return nil, err
		}
		log.Debugf("shor: N=%d attempt %d: %v", n, attempt, err)
		last = err
	}
	log.Warnf("shor: N=%d not factored after %d attempts", n, maxAttempts)
	return nil, fmt.Errorf("%w: N=%d after %d attempts (last: %v)",
		ErrFactorizationFailed, n, maxAttempts, last)
}

// Draw a random base in [2, n-2], coprime with n. n must be at least 5.
// If no unit is found after maxBaseDraws tries, a recoverable
// *AttemptError is returned.
func draw_base(rng io.Reader, n uint64) (uint64, error) {
	var a uint64
	for i := 0; i < maxBaseDraws; i++ {
		w, err := draw_below(rng, n-3)
		if err != nil {
			return 0, err
		}
		a = w + 2
		if gcd(a, n) == 1 {
			return a, nil
		}
	}
	return 0, &AttemptError{
		Base: a,
		Err:  fmt.Errorf("%w in %d draws", errNoUnit, maxBaseDraws),
	}
}

// Single attempt with base a, which must be a unit modulo m.n. On
// failure, the returned error is an *AttemptError, unless the order
// search itself exceeded its bound.
func attempt_base(m *modulus, a uint64, bound uint64) (*Result, error) {
	n := m.n
	r, ok := find_order_inner(m, a, bound)
	if !ok {
		return nil, fmt.Errorf("%w: base %d modulo %d, bound %d",
			ErrOrderNotFound, a, n, bound)
	}
	if r&1 != 0 {
		return nil, &AttemptError{Base: a, Order: r, Err: ErrOrderParity}
	}

	// x^2 = 1 and, since r is minimal, x != 1.
	x := m.pow(a, r>>1)
	if x == n-1 {
		return nil, &AttemptError{Base: a, Order: r, Err: ErrDegenerateRoot}
	}

	// x is a unit other than 1 and n-1, so both x-1 and x+1 are in
	// [1, n-1] and do not overflow.
	for _, f := range [2]uint64{gcd(x-1, n), gcd(x+1, n)} {
		if f > 1 && f < n {
			return &Result{P: f, Q: n / f, Base: a, Order: r}, nil
		}
	}
	return nil, &AttemptError{Base: a, Order: r, Err: ErrNoNontrivialFactor}
}
