// Package aesni provides the AES round primitives used by the AES-192 key schedule and round pipelines.
//
// The primitives have the exact semantics of the x86 AES-NI instructions (AESENC, AESENCLAST, AESDEC, AESDECLAST,
// AESIMC, AESKEYGENASSIST) over 128-bit lanes laid out as 16 bytes in memory order. On amd64 they are backed by those
// instructions; everywhere else, or when built with the purego tag, a bitsliced pure Go implementation is used which
// attempts to be constant time.
package aesni

import "errors"

// ErrUnsupported is returned when the AES-NI instruction set is not available on the current CPU.
var ErrUnsupported = errors.New("aesni: AES instructions not supported")

// A Provider supplies the AES round primitives over 128-bit states. All methods operate in place on the state and
// never retain their arguments.
type Provider interface {
	// Name returns a short, stable name for the backend.
	Name() string

	// XOR sets state to state ^ key.
	XOR(state, key *[16]byte)

	// Enc performs one full AES encryption round: ShiftRows, SubBytes, MixColumns, AddRoundKey.
	Enc(state, key *[16]byte)

	// EncLast performs the final AES encryption round, which omits MixColumns.
	EncLast(state, key *[16]byte)

	// Dec performs one full round of the equivalent inverse cipher: InvShiftRows, InvSubBytes, InvMixColumns,
	// AddRoundKey.
	Dec(state, key *[16]byte)

	// DecLast performs the final round of the equivalent inverse cipher, which omits InvMixColumns.
	DecLast(state, key *[16]byte)

	// InvMixColumns applies InvMixColumns to state.
	InvMixColumns(state *[16]byte)

	// KeygenAssist sets dst to the AESKEYGENASSIST result of src with the given round constant: words 0 and 2 are
	// SubWord of src words 1 and 3, words 1 and 3 are RotWord(SubWord(...)) ^ rcon.
	KeygenAssist(dst, src *[16]byte, rcon byte)

	// XOR8 applies XOR to each of the eight concatenated states with the same key.
	XOR8(states *[128]byte, key *[16]byte)

	// Enc8 applies Enc to each of the eight concatenated states with the same key.
	Enc8(states *[128]byte, key *[16]byte)

	// EncLast8 applies EncLast to each of the eight concatenated states with the same key.
	EncLast8(states *[128]byte, key *[16]byte)

	// Dec8 applies Dec to each of the eight concatenated states with the same key.
	Dec8(states *[128]byte, key *[16]byte)

	// DecLast8 applies DecLast to each of the eight concatenated states with the same key.
	DecLast8(states *[128]byte, key *[16]byte)
}

// A Pipeline runs all 13 rounds of an AES-192 schedule in one call, keeping the state in registers between rounds.
// Providers may implement it as a fast path; the result must equal the round-by-round composition of the Provider
// methods.
type Pipeline interface {
	// EncryptBlock applies XOR with keys[0], Enc with keys[1..11] and EncLast with keys[12].
	EncryptBlock(keys *[13][16]byte, block *[16]byte)

	// DecryptBlock applies XOR with keys[0], Dec with keys[1..11] and DecLast with keys[12]. The keys must already be
	// in decryption order.
	DecryptBlock(keys *[13][16]byte, block *[16]byte)

	// EncryptBatch is EncryptBlock over eight concatenated blocks, applying each key to every block before the next.
	EncryptBatch(keys *[13][16]byte, blocks *[128]byte)

	// DecryptBatch is DecryptBlock over eight concatenated blocks, applying each key to every block before the next.
	DecryptBatch(keys *[13][16]byte, blocks *[128]byte)
}

// Hardware returns the AES-NI provider, or ErrUnsupported if the CPU lacks AES instructions or the package was built
// without assembly.
func Hardware() (Provider, error) {
	if hardware == nil {
		return nil, ErrUnsupported
	}
	return hardware, nil
}

// Software returns the pure Go provider. It is always available and bit-for-bit equivalent to the hardware provider.
func Software() Provider {
	return software
}

// Detect returns the hardware provider if it is available and the software provider otherwise.
func Detect() Provider {
	if hardware != nil {
		return hardware
	}
	return software
}

// AESENC returns the result of the AESENC instruction on state and key, computed in software.
func AESENC(state, key [16]byte) [16]byte {
	software.Enc(&state, &key)
	return state
}

// AESENCLAST returns the result of the AESENCLAST instruction on state and key, computed in software.
func AESENCLAST(state, key [16]byte) [16]byte {
	software.EncLast(&state, &key)
	return state
}

// AESDEC returns the result of the AESDEC instruction on state and key, computed in software.
func AESDEC(state, key [16]byte) [16]byte {
	software.Dec(&state, &key)
	return state
}

// AESDECLAST returns the result of the AESDECLAST instruction on state and key, computed in software.
func AESDECLAST(state, key [16]byte) [16]byte {
	software.DecLast(&state, &key)
	return state
}

// AESIMC returns the result of the AESIMC instruction on state, computed in software.
func AESIMC(state [16]byte) [16]byte {
	software.InvMixColumns(&state)
	return state
}
