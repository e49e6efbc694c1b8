//go:build amd64 && !purego

package goaes

import (
	"golang.org/x/sys/cpu"

	"github.com/kjetilfjellheim/go-aes/round"
)

// hasAESNI indicates whether AES-NI instructions are available
var hasAESNI = cpu.X86.HasAES

// defined in asm_amd64.s

//go:noescape
func encryptBlockAsm(nr int, xk *byte, dst *byte, src *byte)

//go:noescape
func decryptBlockAsm(nr int, xk *byte, dst *byte, src *byte)

// encryptAsm runs the forward cipher with AES-NI. It only applies when the
// caller supplied the canonical S-box, which the hardware rounds fix.
func encryptAsm(block Block, schedule KeySchedule) (Block, bool) {
	if !hasAESNI {
		return Block{}, false
	}
	xk := make([]byte, 0, len(schedule)*BlockSize)
	for _, k := range schedule {
		xk = append(xk, k[:]...)
	}
	var out Block
	encryptBlockAsm(schedule.Rounds(), &xk[0], &out[0], &block[0])
	return out, true
}

// decryptAsm runs the equivalent inverse cipher with AES-NI. AESDEC applies
// InvMixColumns to the state before the key addition, so the middle round
// keys are passed through InvMixColumns to compensate.
func decryptAsm(block Block, schedule KeySchedule) (Block, bool) {
	if !hasAESNI {
		return Block{}, false
	}
	last := len(schedule) - 1
	xk := make([]byte, 0, len(schedule)*BlockSize)
	xk = append(xk, schedule[last][:]...)
	for i := 1; i < last; i++ {
		k := round.InvMixColumns(schedule[last-i])
		xk = append(xk, k[:]...)
	}
	xk = append(xk, schedule[0][:]...)
	var out Block
	decryptBlockAsm(schedule.Rounds(), &xk[0], &out[0], &block[0])
	return out, true
}
