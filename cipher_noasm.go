//go:build !amd64 || purego

package goaes

func encryptAsm(Block, KeySchedule) (Block, bool) { return Block{}, false }

func decryptAsm(Block, KeySchedule) (Block, bool) { return Block{}, false }
