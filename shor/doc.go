// This package implements the classical part of Shor's factoring
// algorithm, at toy sizes.
//
// WARNING: this code is meant for teaching. It factors integers by a
// brute-force search of multiplicative orders, which is exponential in
// the size of the modulus; it is practical only for small moduli (the
// 8-bit RSA moduli used in the accompanying material are factored
// instantly). It must not be used to assess the security of real keys.
//
// Shor's algorithm reduces factoring of a composite N to order finding:
// for a base a coprime with N, find the smallest r > 0 such that
// a^r = 1 mod N. A quantum computer finds r efficiently; here, [FindOrder]
// tries r = 1, 2, 3... in sequence. If r is even and x = a^(r/2) is not
// -1 modulo N, then x^2 = 1 mod N with x != 1 and x != -1, so N divides
// (x-1)*(x+1) without dividing either term: gcd(x-1, N) and gcd(x+1, N)
// are nontrivial factors of N. Otherwise, another base is tried. For an
// odd N with at least two distinct prime factors, at least half of the
// bases lead to a factor.
//
// [AttemptFactor] and [Factor] run the whole procedure, including the
// retries over random bases. Even moduli are split directly (2 is a
// factor), prime moduli are rejected with ErrAlreadyPrime, and powers of
// odd primes, on which the gcd step can never succeed, are rejected with
// ErrPrimePower unless the caller explicitly asks for the attempts to be
// run anyway. Randomness for base selection is provided by the caller
// (an io.Reader); if none is provided, the operating system's RNG is used
// (through crypto/rand.Reader). [NewSeededReader] makes deterministic
// sources for reproducible runs.
//
// All errors wrap one of the sentinel values defined by this package
// (ErrInvalidInput, ErrOrderNotFound, ErrAlreadyPrime, ErrPrimePower,
// ErrFactorizationFailed, ErrNotInvertible) and can be tested with
// errors.Is().
//
// Finally, [Break] shows the consequence for textbook RSA: given a public
// key (N, e), it factors N and recomputes the private exponent d.
package shor
