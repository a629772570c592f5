package shor

import (
	"math/big"
	"math/bits"
)

// Modular arithmetic on 64-bit words.
//
// A modulus is described by a small structure with precomputed values,
// in the same way as the small primes used for RNS computations:
//
//	n     the modulus itself (n >= 1)
//	n0i   -1/n mod 2^64 (only meaningful for odd n)
//	r2    2^128 mod n (only meaningful for odd n)
//
// For an odd modulus, products are computed in Montgomery representation
// (x is stored as x*2^64 mod n). Even moduli use a plain 128-bit product
// followed by a division; they only show up when the caller asks for the
// order of an element modulo an even integer.
type modulus struct {
	n   uint64
	n0i uint64
	r2  uint64
	odd bool
}

func new_modulus(n uint64) *modulus {
	m := &modulus{n: n, odd: n&1 == 1}
	if m.odd && n > 1 {
		m.n0i = mp_ninv64(n)
		r := bits.Rem64(1, 0, n)
		m.r2 = mp_mul_plain(r, r, n)
	}
	return m
}

// Given an odd x, compute -1/x mod 2^64.
func mp_ninv64(x uint64) uint64 {
	y := 2 - x
	y *= 2 - x*y
	y *= 2 - x*y
	y *= 2 - x*y
	y *= 2 - x*y
	y *= 2 - x*y
	return -y
}

// Compute a*b mod n, with a and b in [0,n-1].
func mp_mul_plain(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, n)
}

// Montgomery multiplication: a*b/2^64 mod n. The modulus must be odd,
// and a and b must be in [0,n-1]. Output is in [0,n-1].
func mp_mmul(a, b, n, n0i uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	w := lo * n0i
	mhi, mlo := bits.Mul64(w, n)

	// lo + mlo = 0 mod 2^64; there is a carry unless lo = 0.
	_, cc := bits.Add64(lo, mlo, 0)
	r, cc := bits.Add64(hi, mhi, cc)

	// r + cc*2^64 < 2*n, a single subtraction is enough (it wraps
	// around correctly when cc = 1).
	if cc != 0 || r >= n {
		r -= n
	}
	return r
}

// Compute a*b mod n; a and b must be in [0,n-1].
func (m *modulus) mul(a, b uint64) uint64 {
	if m.n == 1 {
		return 0
	}
	if !m.odd {
		return mp_mul_plain(a, b, m.n)
	}
	// (a*r2/R)*b/R = a*b mod n.
	return mp_mmul(mp_mmul(a, m.r2, m.n, m.n0i), b, m.n, m.n0i)
}

// Compute a^e mod n by square-and-multiply, scanning the exponent from
// the top bit downwards. a is reduced first, so any value is accepted.
// By convention, x^0 = 1 (reduced modulo n, hence 0 if n = 1).
func (m *modulus) pow(a, e uint64) uint64 {
	if m.n == 1 {
		return 0
	}
	a %= m.n
	if !m.odd {
		x := uint64(1)
		for i := bits.Len64(e) - 1; i >= 0; i-- {
			x = mp_mul_plain(x, x, m.n)
			if (e>>uint(i))&1 != 0 {
				x = mp_mul_plain(x, a, m.n)
			}
		}
		return x
	}

	// Montgomery representation: am = a*R, x = 1*R.
	am := mp_mmul(a, m.r2, m.n, m.n0i)
	x := bits.Rem64(1, 0, m.n)
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		x = mp_mmul(x, x, m.n, m.n0i)
		if (e>>uint(i))&1 != 0 {
			x = mp_mmul(x, am, m.n, m.n0i)
		}
	}

	// Back to normal representation.
	return mp_mmul(x, 1, m.n, m.n0i)
}

// Euclidean GCD. gcd(0, 0) = 0.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Compute x^k, and report whether it fits on 64 bits.
func checked_pow(x uint64, k uint) (uint64, bool) {
	r := uint64(1)
	for i := uint(0); i < k; i++ {
		hi, lo := bits.Mul64(r, x)
		if hi != 0 {
			return 0, false
		}
		r = lo
	}
	return r, true
}

// Compute floor(n^(1/k)) for k >= 1.
func iroot(n uint64, k uint) uint64 {
	if k == 1 || n < 2 {
		return n
	}

	// The root has at most ceil(bitlen/k) bits.
	hi := uint64(1) << ((uint(bits.Len64(n)) + k - 1) / k)
	lo := uint64(1)
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		v, ok := checked_pow(mid, k)
		if ok && v <= n {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Primality test. With zero Miller-Rabin rounds, big.Int.ProbablyPrime
// applies Baillie-PSW only, which is exact for all inputs below 2^64.
func is_prime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}

// If n = p^k for a prime p and some k >= 2, return p and k; otherwise,
// return k = 0.
func prime_power(n uint64) (p uint64, k uint) {
	if n < 4 {
		return 0, 0
	}
	for k = uint(bits.Len64(n)) - 1; k >= 2; k-- {
		r := iroot(n, k)
		if r < 2 {
			continue
		}
		v, ok := checked_pow(r, k)
		if ok && v == n && is_prime(r) {
			return r, k
		}
	}
	return 0, 0
}
