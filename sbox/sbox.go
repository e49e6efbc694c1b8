// Package sbox holds the AES substitution tables. The forward S-box and its
// inverse are built once at package initialization from the GF(2^8)
// multiplicative inverse and the affine transformation, then treated as
// immutable shared state.
package sbox

import (
	"fmt"

	"github.com/kjetilfjellheim/go-aes/gf"
)

// Size is the number of entries in a substitution table.
const Size = 256

// Table is a byte substitution table.
type Table [Size]byte

// New copies entries into a Table. It fails unless the input holds exactly
// 256 entries forming a permutation of the byte values.
func New(entries []byte) (*Table, error) {
	if len(entries) != Size {
		return nil, fmt.Errorf("table has %d entries, need %d", len(entries), Size)
	}
	var seen [Size]bool
	var t Table
	for i, v := range entries {
		if seen[v] {
			return nil, fmt.Errorf("table is not a permutation: value 0x%02x repeats", v)
		}
		seen[v] = true
		t[i] = v
	}
	return &t, nil
}

var forward, inverse Table

func init() {
	for i := 0; i < Size; i++ {
		forward[i] = affine(gf.Inverse(byte(i)))
	}
	for i := 0; i < Size; i++ {
		inverse[forward[i]] = byte(i)
	}
}

// affine applies the AES affine transformation over GF(2).
func affine(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		bit := (b>>i ^ b>>((i+4)%8) ^ b>>((i+5)%8) ^ b>>((i+6)%8) ^ b>>((i+7)%8)) & 1
		r |= bit << i
	}
	return r ^ 0x63
}

// Forward returns the AES S-box.
func Forward() *Table { return &forward }

// Inverse returns the inverse S-box, satisfying
// Forward()[Inverse()[x]] == x for every byte x.
func Inverse() *Table { return &inverse }
