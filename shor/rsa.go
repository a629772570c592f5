package shor

import (
	"fmt"
	"math/big"
)

// Textbook RSA over small moduli.
//
// These types carry no padding and no validation beyond range checks;
// they exist to show how a factored modulus gives away the private
// exponent. The canonical 8-bit example is N = 11*17 = 187, e = 3,
// d = 107.

// PublicKey is a textbook RSA public key (N, e).
type PublicKey struct {
	N uint64
	E uint64
}

// PrivateKey is a textbook RSA private key, including the two prime
// factors of the modulus.
type PrivateKey struct {
	PublicKey
	D uint64
	P uint64
	Q uint64
}

// Encrypt computes m^e mod N. The message must be lower than N.
func (pub *PublicKey) Encrypt(m uint64) (uint64, error) {
	if pub.N < 2 || m >= pub.N {
		return 0, fmt.Errorf("%w: message %d does not fit modulus %d",
			ErrInvalidInput, m, pub.N)
	}
	return new_modulus(pub.N).pow(m, pub.E), nil
}

// Decrypt computes c^d mod N. The ciphertext must be lower than N.
func (priv *PrivateKey) Decrypt(c uint64) (uint64, error) {
	if priv.N < 2 || c >= priv.N {
		return 0, fmt.Errorf("%w: ciphertext %d does not fit modulus %d",
			ErrInvalidInput, c, priv.N)
	}
	return new_modulus(priv.N).pow(c, priv.D), nil
}

// Break recovers the private key matching pub, by factoring N with
// [Factor] (opts is passed through), then inverting e modulo
// phi(N) = (p-1)*(q-1).
//
// The modulus must be the product of two distinct primes; otherwise, an
// error wrapping ErrInvalidInput is returned. If e is not invertible
// modulo phi(N), the error wraps ErrNotInvertible. Factoring failures
// are returned as reported by [Factor].
func Break(pub *PublicKey, opts *Options) (*PrivateKey, error) {
	res, err := Factor(pub.N, opts)
	if err != nil {
		return nil, err
	}
	p, q := res.P, res.Q
	if p > q {
		p, q = q, p
	}
	if p == q || !is_prime(p) || !is_prime(q) {
		return nil, fmt.Errorf("%w: %d = %d*%d is not a two-prime modulus",
			ErrInvalidInput, pub.N, p, q)
	}
	log.Debugf("shor: N=%d factored as %d*%d (base %d, order %d)",
		pub.N, p, q, res.Base, res.Order)

	// p and q are distinct primes with p*q < 2^64, so phi fits too.
	phi := (p - 1) * (q - 1)
	d := new(big.Int).ModInverse(
		new(big.Int).SetUint64(pub.E), new(big.Int).SetUint64(phi))
	if d == nil {
		return nil, fmt.Errorf("%w: e=%d, phi=%d",
			ErrNotInvertible, pub.E, phi)
	}
	priv := &PrivateKey{
		PublicKey: *pub,
		D:         d.Uint64(),
		P:         p,
		Q:         q,
	}

	// Sanity check: e*d = 1 mod phi.
	if phi > 1 && new_modulus(phi).mul(pub.E%phi, priv.D) != 1 {
		return nil, fmt.Errorf("%w: e=%d, phi=%d",
			ErrNotInvertible, pub.E, phi)
	}
	return priv, nil
}
