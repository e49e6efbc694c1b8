// Package gf implements arithmetic in GF(2^8) with the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
package gf

// Poly is the low byte of the reduction polynomial 0x11B.
const Poly = 0x1b

// Xtime multiplies b by the polynomial x in GF(2^8).
func Xtime(b byte) byte {
	hi := b & 0x80
	b <<= 1
	if hi != 0 {
		b ^= Poly
	}
	return b
}

// Mul multiplies two field elements (shift-and-add).
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return p
}

// Inverse returns the multiplicative inverse of b, with Inverse(0) == 0.
func Inverse(b byte) byte {
	if b == 0 {
		return 0
	}
	for i := 1; i < 256; i++ {
		if Mul(b, byte(i)) == 1 {
			return byte(i)
		}
	}
	// Every nonzero element of a field has an inverse.
	panic("gf: unreachable")
}
