package shor

import (
	"fmt"
)

// Compute the multiplicative order of a modulo n, i.e. the smallest
// integer r > 0 such that a^r = 1 mod n.
//
//	- n is the modulus (at least 2).
//	- a is the base, with 1 <= a < n and gcd(a, n) = 1.
//
// An error wrapping ErrInvalidInput is returned if these conditions are
// not met. Since a is then a unit modulo n, its order divides phi(n) and
// is lower than n; the search is bounded at n and an error wrapping
// ErrOrderNotFound is returned past that bound.
func FindOrder(a, n uint64) (uint64, error) {
	return FindOrderBounded(a, n, n)
}

// Similar to [FindOrder], except that the search gives up (with an error
// wrapping ErrOrderNotFound) if no order is found in [1, bound].
func FindOrderBounded(a, n, bound uint64) (uint64, error) {
	if err := check_unit(a, n); err != nil {
		return 0, err
	}
	r, ok := find_order_inner(new_modulus(n), a, bound)
	if !ok {
		return 0, fmt.Errorf("%w: base %d modulo %d, bound %d",
			ErrOrderNotFound, a, n, bound)
	}
	return r, nil
}

// Check that n >= 2, 1 <= a < n and gcd(a, n) = 1.
func check_unit(a, n uint64) error {
	if n < 2 {
		return fmt.Errorf("%w: modulus %d is lower than 2", ErrInvalidInput, n)
	}
	if a == 0 || a >= n {
		return fmt.Errorf("%w: base %d is not in [1, %d]",
			ErrInvalidInput, a, n-1)
	}
	if g := gcd(a, n); g != 1 {
		return fmt.Errorf("%w: base %d is not a unit modulo %d (gcd = %d)",
			ErrInvalidInput, a, n, g)
	}
	return nil
}

// Inner order search; the base is assumed to be a unit modulo m.n. Each
// candidate power is recomputed from scratch by modular exponentiation.
func find_order_inner(m *modulus, a uint64, bound uint64) (uint64, bool) {
	for k := uint64(1); k <= bound && k != 0; k++ {
		if m.pow(a, k) == 1 {
			return k, true
		}
	}
	return 0, false
}
