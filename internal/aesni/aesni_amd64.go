//go:build amd64 && !purego

package aesni

import "golang.org/x/sys/cpu"

var hardware = detectHardware() //nolint:gochecknoglobals // should only check once

func detectHardware() Provider {
	if cpu.X86.HasAES {
		return aesniImpl{}
	}
	return nil
}

// aesniImpl calls the AES-NI instructions directly.
type aesniImpl struct{}

func (aesniImpl) Name() string {
	return "aesni"
}

func (aesniImpl) XOR(state, key *[16]byte) {
	xorAsm(state, key)
}

func (aesniImpl) Enc(state, key *[16]byte) {
	encAsm(state, key)
}

func (aesniImpl) EncLast(state, key *[16]byte) {
	encLastAsm(state, key)
}

func (aesniImpl) Dec(state, key *[16]byte) {
	decAsm(state, key)
}

func (aesniImpl) DecLast(state, key *[16]byte) {
	decLastAsm(state, key)
}

func (aesniImpl) InvMixColumns(state *[16]byte) {
	imcAsm(state)
}

func (aesniImpl) KeygenAssist(dst, src *[16]byte, rcon byte) {
	// AESKEYGENASSIST takes its round constant as an immediate, so the assembly uses zero and the constant is folded
	// in here.
	keygenAssistAsm(dst, src)
	dst[4] ^= rcon
	dst[12] ^= rcon
}

func (aesniImpl) XOR8(states *[128]byte, key *[16]byte) {
	xor8Asm(states, key)
}

func (aesniImpl) Enc8(states *[128]byte, key *[16]byte) {
	enc8Asm(states, key)
}

func (aesniImpl) EncLast8(states *[128]byte, key *[16]byte) {
	encLast8Asm(states, key)
}

func (aesniImpl) Dec8(states *[128]byte, key *[16]byte) {
	dec8Asm(states, key)
}

func (aesniImpl) DecLast8(states *[128]byte, key *[16]byte) {
	decLast8Asm(states, key)
}

func (aesniImpl) EncryptBlock(keys *[13][16]byte, block *[16]byte) {
	encryptBlockAsm(keys, block)
}

func (aesniImpl) DecryptBlock(keys *[13][16]byte, block *[16]byte) {
	decryptBlockAsm(keys, block)
}

func (aesniImpl) EncryptBatch(keys *[13][16]byte, blocks *[128]byte) {
	encryptBatchAsm(keys, blocks)
}

func (aesniImpl) DecryptBatch(keys *[13][16]byte, blocks *[128]byte) {
	decryptBatchAsm(keys, blocks)
}

var _ Pipeline = aesniImpl{}

//go:noescape
func xorAsm(state, key *[16]byte)

//go:noescape
func encAsm(state, key *[16]byte)

//go:noescape
func encLastAsm(state, key *[16]byte)

//go:noescape
func decAsm(state, key *[16]byte)

//go:noescape
func decLastAsm(state, key *[16]byte)

//go:noescape
func imcAsm(state *[16]byte)

//go:noescape
func keygenAssistAsm(dst, src *[16]byte)

//go:noescape
func xor8Asm(states *[128]byte, key *[16]byte)

//go:noescape
func enc8Asm(states *[128]byte, key *[16]byte)

//go:noescape
func encLast8Asm(states *[128]byte, key *[16]byte)

//go:noescape
func dec8Asm(states *[128]byte, key *[16]byte)

//go:noescape
func decLast8Asm(states *[128]byte, key *[16]byte)

//go:noescape
func encryptBlockAsm(keys *[13][16]byte, block *[16]byte)

//go:noescape
func decryptBlockAsm(keys *[13][16]byte, block *[16]byte)

//go:noescape
func encryptBatchAsm(keys *[13][16]byte, blocks *[128]byte)

//go:noescape
func decryptBatchAsm(keys *[13][16]byte, blocks *[128]byte)
