// Package round implements the four AES round transformations and their
// inverses as pure functions over 16-byte blocks. The state follows the
// FIPS-197 layout: row r, column c is byte r+4c, so rows are the strided
// byte sets {r, r+4, r+8, r+12} and columns are contiguous 4-byte chunks.
// Every function returns a new value and never mutates its input.
package round

import (
	"github.com/kjetilfjellheim/go-aes/gf"
	"github.com/kjetilfjellheim/go-aes/sbox"
)

// AddRoundKey XORs the round key into the state byte by byte. Applying the
// same key twice restores the input.
func AddRoundKey(state, key [16]byte) [16]byte {
	var out [16]byte
	for i := range state {
		out[i] = state[i] ^ key[i]
	}
	return out
}

// SubBytes substitutes every state byte through the table.
func SubBytes(state [16]byte, t *sbox.Table) [16]byte {
	var out [16]byte
	for i, b := range state {
		out[i] = t[b]
	}
	return out
}

// InvSubBytes is SubBytes under the inverse table, kept as a named
// counterpart to the other inverse transformations.
func InvSubBytes(state [16]byte, t *sbox.Table) [16]byte {
	return SubBytes(state, t)
}

// ShiftRows cyclically rotates row r left by r positions. Row 0 is never
// shifted.
func ShiftRows(state [16]byte) [16]byte {
	var out [16]byte
	for r := 0; r < 4; r++ {
		row := rotLeft(rowOf(state, r), r)
		for c := 0; c < 4; c++ {
			out[r+4*c] = row[c]
		}
	}
	return out
}

// InvShiftRows cyclically rotates row r right by r positions, undoing
// ShiftRows exactly.
func InvShiftRows(state [16]byte) [16]byte {
	var out [16]byte
	for r := 0; r < 4; r++ {
		row := rotLeft(rowOf(state, r), 4-r)
		for c := 0; c < 4; c++ {
			out[r+4*c] = row[c]
		}
	}
	return out
}

func rowOf(state [16]byte, r int) [4]byte {
	return [4]byte{state[r], state[r+4], state[r+8], state[r+12]}
}

func rotLeft(row [4]byte, n int) [4]byte {
	var out [4]byte
	for i := range row {
		out[i] = row[(i+n)&3]
	}
	return out
}

// MixColumns multiplies every column by the MDS matrix with coefficients
// (2, 3, 1, 1) over GF(2^8).
func MixColumns(state [16]byte) [16]byte {
	var out [16]byte
	for c := 0; c < 4; c++ {
		col := mixColumn([4]byte{state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]})
		copy(out[4*c:], col[:])
	}
	return out
}

// InvMixColumns multiplies every column by the inverse matrix with
// coefficients (14, 11, 13, 9), undoing MixColumns exactly.
func InvMixColumns(state [16]byte) [16]byte {
	var out [16]byte
	for c := 0; c < 4; c++ {
		col := invMixColumn([4]byte{state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]})
		copy(out[4*c:], col[:])
	}
	return out
}

func mixColumn(a [4]byte) [4]byte {
	// 2x = Xtime(x), 3x = Xtime(x) ^ x.
	return [4]byte{
		gf.Xtime(a[0]) ^ gf.Xtime(a[1]) ^ a[1] ^ a[2] ^ a[3],
		a[0] ^ gf.Xtime(a[1]) ^ gf.Xtime(a[2]) ^ a[2] ^ a[3],
		a[0] ^ a[1] ^ gf.Xtime(a[2]) ^ gf.Xtime(a[3]) ^ a[3],
		gf.Xtime(a[0]) ^ a[0] ^ a[1] ^ a[2] ^ gf.Xtime(a[3]),
	}
}

func invMixColumn(a [4]byte) [4]byte {
	return [4]byte{
		gf.Mul(14, a[0]) ^ gf.Mul(11, a[1]) ^ gf.Mul(13, a[2]) ^ gf.Mul(9, a[3]),
		gf.Mul(9, a[0]) ^ gf.Mul(14, a[1]) ^ gf.Mul(11, a[2]) ^ gf.Mul(13, a[3]),
		gf.Mul(13, a[0]) ^ gf.Mul(9, a[1]) ^ gf.Mul(14, a[2]) ^ gf.Mul(11, a[3]),
		gf.Mul(11, a[0]) ^ gf.Mul(13, a[1]) ^ gf.Mul(9, a[2]) ^ gf.Mul(14, a[3]),
	}
}
