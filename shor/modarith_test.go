package shor

import (
	"encoding/binary"
	"math/big"
	"testing"

	sha3 "golang.org/x/crypto/sha3"
)

func TestModArithCore(t *testing.T) {
	sh := sha3.NewShake256()
	sh.Write([]byte("test_modarith"))
	for i := 0; i < 2000; i++ {
		var buf [24]byte
		sh.Read(buf[:])
		n := binary.LittleEndian.Uint64(buf[:8])
		// Exercise small, medium and full-width moduli.
		switch i % 3 {
		case 0:
			n >>= 56
		case 1:
			n >>= 32
		}
		if n < 2 {
			n += 2
		}
		a := binary.LittleEndian.Uint64(buf[8:16]) % n
		b := binary.LittleEndian.Uint64(buf[16:]) % n
		m := new_modulus(n)

		bn := new(big.Int).SetUint64(n)
		ba := new(big.Int).SetUint64(a)
		bb := new(big.Int).SetUint64(b)

		c := m.mul(a, b)
		d := new(big.Int).Mul(ba, bb)
		d.Mod(d, bn)
		if c != d.Uint64() {
			t.Fatalf("ERR mul: n=%d a=%d b=%d -> %d (expected: %d)\n",
				n, a, b, c, d.Uint64())
		}

		c = m.pow(a, b)
		d.Exp(ba, bb, bn)
		if c != d.Uint64() {
			t.Fatalf("ERR pow: n=%d a=%d e=%d -> %d (expected: %d)\n",
				n, a, b, c, d.Uint64())
		}

		c = gcd(a, n)
		d.GCD(nil, nil, ba, bn)
		if c != d.Uint64() {
			t.Fatalf("ERR gcd: n=%d a=%d -> %d (expected: %d)\n",
				n, a, c, d.Uint64())
		}
	}
}

func TestModArithNinv(t *testing.T) {
	sh := sha3.NewShake256()
	sh.Write([]byte("test_ninv"))
	for i := 0; i < 1000; i++ {
		var buf [8]byte
		sh.Read(buf[:])
		x := binary.LittleEndian.Uint64(buf[:]) | 1
		y := mp_ninv64(x)
		if x*y != ^uint64(0) {
			t.Fatalf("ERR ninv: x=%d -> %d\n", x, y)
		}
	}
}

func TestModArithEdges(t *testing.T) {
	m := new_modulus(1)
	if m.pow(5, 3) != 0 || m.mul(0, 0) != 0 {
		t.Fatalf("ERR: arithmetic modulo 1 must yield 0\n")
	}

	// Largest odd and even 64-bit moduli.
	for _, n := range []uint64{^uint64(0), ^uint64(0) - 1} {
		m = new_modulus(n)
		if m.pow(n-1, 2) != 1 {
			t.Fatalf("ERR: (-1)^2 mod %d = %d\n", n, m.pow(n-1, 2))
		}
		if m.pow(n-1, 0) != 1 {
			t.Fatalf("ERR: x^0 mod %d = %d\n", n, m.pow(n-1, 0))
		}
		if m.mul(n-1, n-1) != 1 {
			t.Fatalf("ERR: (-1)*(-1) mod %d = %d\n", n, m.mul(n-1, n-1))
		}
	}

	if gcd(0, 0) != 0 || gcd(0, 7) != 7 || gcd(7, 0) != 7 {
		t.Fatalf("ERR: gcd with zero operand\n")
	}
}

func TestIroot(t *testing.T) {
	for n := uint64(0); n < 5000; n++ {
		for k := uint(1); k <= 6; k++ {
			r := iroot(n, k)
			lo, _ := checked_pow(r, k)
			hi, ok := checked_pow(r+1, k)
			if lo > n || (ok && hi <= n) {
				t.Fatalf("ERR iroot: n=%d k=%d -> %d\n", n, k, r)
			}
		}
	}
	if r := iroot(^uint64(0), 2); r != 0xFFFFFFFF {
		t.Fatalf("ERR iroot: sqrt(2^64-1) -> %d\n", r)
	}
	if r := iroot(^uint64(0), 63); r != 2 {
		t.Fatalf("ERR iroot: 63-th root of 2^64-1 -> %d\n", r)
	}
}

func TestPrimality(t *testing.T) {
	// Sieve of Eratosthenes as reference.
	const lim = 10000
	var composite [lim]bool
	for i := 2; i < lim; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < lim; j += i {
			composite[j] = true
		}
	}
	for i := 0; i < lim; i++ {
		exp := i >= 2 && !composite[i]
		if is_prime(uint64(i)) != exp {
			t.Fatalf("ERR is_prime(%d) (expected: %v)\n", i, exp)
		}
	}

	// Largest 64-bit prime.
	if !is_prime(18446744073709551557) {
		t.Fatalf("ERR: 2^64-59 is prime\n")
	}
}

func TestPrimePower(t *testing.T) {
	var tests = []struct {
		n uint64
		p uint64
		k uint
	}{
		{4, 2, 2},
		{8, 2, 3},
		{9, 3, 2},
		{25, 5, 2},
		{27, 3, 3},
		{243, 3, 5},
		{1 << 63, 2, 63},
		{4294967291 * 4294967291, 4294967291, 2},
		{15, 0, 0},
		{36, 0, 0},
		{7, 0, 0},
		{1, 0, 0},
		{100, 0, 0},
	}
	for _, tt := range tests {
		p, k := prime_power(tt.n)
		if p != tt.p || k != tt.k {
			t.Fatalf("ERR prime_power(%d) -> %d^%d (expected: %d^%d)\n",
				tt.n, p, k, tt.p, tt.k)
		}
	}
}
