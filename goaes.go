// Package goaes implements the AES single-block transformation core: the
// four round transformations composed into the forward and inverse ciphers
// over one 16-byte block. Key expansion and modes of operation are external
// collaborators; the caller supplies the round keys and the substitution
// table. Every call is a pure function of its inputs, so distinct blocks may
// be processed concurrently with a shared schedule and table.
package goaes

import (
	"errors"
	"fmt"

	"github.com/kjetilfjellheim/go-aes/round"
	"github.com/kjetilfjellheim/go-aes/sbox"
)

// BlockSize is the number of bytes processed by one cipher invocation.
const BlockSize = 16

// Valid key schedule lengths: 10, 12 or 14 transformation rounds plus the
// initial key addition, for 128/192/256-bit master keys.
const (
	Rounds128 = 11
	Rounds192 = 13
	Rounds256 = 15
)

var (
	ErrInvalidLength      = errors.New("block must be exactly 16 bytes")
	ErrInvalidKeySchedule = errors.New("key schedule must hold 11, 13 or 15 round keys")
	ErrInvalidTable       = errors.New("substitution table must be a 256-entry permutation")
)

// Block is the 16-byte unit processed by one cipher invocation.
type Block [16]byte

// RoundKey is a 16-byte value XORed into the block during AddRoundKey.
type RoundKey [16]byte

// KeySchedule is the ordered sequence of round keys produced by an external
// key expansion.
type KeySchedule []RoundKey

// PlainBlock is a block that has not been encrypted. Only Encrypt accepts
// it, so ciphertext can never be encrypted twice by mistake.
type PlainBlock struct {
	block Block
}

// CipherBlock is an encrypted block. Only Decrypt accepts it.
type CipherBlock struct {
	block Block
}

// NewPlain wraps raw bytes as a plaintext block.
func NewPlain(b []byte) (PlainBlock, error) {
	if len(b) != BlockSize {
		return PlainBlock{}, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	var p PlainBlock
	copy(p.block[:], b)
	return p, nil
}

// NewCipher wraps raw bytes as a ciphertext block.
func NewCipher(b []byte) (CipherBlock, error) {
	if len(b) != BlockSize {
		return CipherBlock{}, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	var c CipherBlock
	copy(c.block[:], b)
	return c, nil
}

// Bytes returns a copy of the underlying block.
func (p PlainBlock) Bytes() Block { return p.block }

// Bytes returns a copy of the underlying block.
func (c CipherBlock) Bytes() Block { return c.block }

// NewKeySchedule validates and copies externally expanded round keys. The
// RoundKey type fixes the 16-byte shape from here on, so the drivers only
// revalidate the count.
func NewKeySchedule(keys [][]byte) (KeySchedule, error) {
	switch len(keys) {
	case Rounds128, Rounds192, Rounds256:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySchedule, len(keys))
	}
	ks := make(KeySchedule, len(keys))
	for i, k := range keys {
		if len(k) != BlockSize {
			return nil, fmt.Errorf("%w: round key %d has %d bytes", ErrInvalidLength, i, len(k))
		}
		copy(ks[i][:], k)
	}
	return ks, nil
}

// Rounds reports the number of transformation rounds the schedule drives.
func (ks KeySchedule) Rounds() int { return len(ks) - 1 }

func (ks KeySchedule) validate() error {
	switch len(ks) {
	case Rounds128, Rounds192, Rounds256:
		return nil
	}
	return fmt.Errorf("%w: got %d", ErrInvalidKeySchedule, len(ks))
}

// Encrypt runs the forward cipher over one block: the initial key addition,
// then SubBytes, ShiftRows, MixColumns and AddRoundKey per round, with
// MixColumns omitted in the final round. The table is normally the AES S-box
// (sbox.Forward()); any other 256-entry permutation yields the matching
// Rijndael variant.
func Encrypt(p PlainBlock, schedule KeySchedule, table []byte) (CipherBlock, error) {
	if err := schedule.validate(); err != nil {
		return CipherBlock{}, err
	}
	t, err := sbox.New(table)
	if err != nil {
		return CipherBlock{}, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if *t == *sbox.Forward() {
		if out, ok := encryptAsm(p.block, schedule); ok {
			return CipherBlock{block: out}, nil
		}
	}
	return CipherBlock{block: Block(encryptGeneric(p.block, schedule, t))}, nil
}

// Decrypt runs the inverse cipher over one block, undoing Encrypt for the
// same schedule. The table is normally the inverse S-box (sbox.Inverse()).
func Decrypt(c CipherBlock, schedule KeySchedule, table []byte) (PlainBlock, error) {
	if err := schedule.validate(); err != nil {
		return PlainBlock{}, err
	}
	t, err := sbox.New(table)
	if err != nil {
		return PlainBlock{}, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if *t == *sbox.Inverse() {
		if out, ok := decryptAsm(c.block, schedule); ok {
			return PlainBlock{block: out}, nil
		}
	}
	return PlainBlock{block: Block(decryptGeneric(c.block, schedule, t))}, nil
}

func encryptGeneric(state [16]byte, schedule KeySchedule, t *sbox.Table) [16]byte {
	state = round.AddRoundKey(state, schedule[0])
	last := len(schedule) - 1
	for i := 1; i <= last; i++ {
		state = round.SubBytes(state, t)
		state = round.ShiftRows(state)
		if i < last {
			state = round.MixColumns(state)
		}
		state = round.AddRoundKey(state, schedule[i])
	}
	return state
}

func decryptGeneric(state [16]byte, schedule KeySchedule, t *sbox.Table) [16]byte {
	last := len(schedule) - 1
	state = round.AddRoundKey(state, schedule[last])
	for i := last - 1; i >= 1; i-- {
		state = round.InvShiftRows(state)
		state = round.InvSubBytes(state, t)
		state = round.AddRoundKey(state, schedule[i])
		state = round.InvMixColumns(state)
	}
	state = round.InvShiftRows(state)
	state = round.InvSubBytes(state, t)
	state = round.AddRoundKey(state, schedule[0])
	return state
}
