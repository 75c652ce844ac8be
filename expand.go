package aes192

import "github.com/codahale/aes192/internal/aesni"

// schedule is a fixed table of round keys.
type schedule = [Rounds + 1][BlockSize]byte

// rcon holds the round constants consumed by the 192-bit key expansion, one per KeySize bytes of schedule after the
// first.
var rcon = [8]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80} //nolint:gochecknoglobals // constant table

// expandKey derives the encryption and decryption schedules from key.
//
// The decryption schedule is stored in the order decryptBlock consumes it: dec[0] is the last encryption round key,
// dec[Rounds] is the first, and every key in between has InvMixColumns applied for the equivalent inverse cipher.
func expandKey(p aesni.Provider, key *[KeySize]byte) (enc, dec schedule) {
	var (
		w      [(Rounds + 1) * BlockSize]byte
		in, kg [16]byte
	)

	copy(w[:], key[:])
	for i := KeySize; i < len(w); i += 4 {
		prev := w[i-4 : i]
		if i%KeySize == 0 {
			// RotWord(SubWord(prev)) ^ rcon comes out of word 3 of the keygen assist.
			copy(in[12:], prev)
			p.KeygenAssist(&kg, &in, rcon[i/KeySize-1])
			prev = kg[12:]
		}
		for j := range 4 {
			w[i+j] = w[i-KeySize+j] ^ prev[j]
		}
	}

	for r := range enc {
		enc[r] = [BlockSize]byte(w[r*BlockSize:])
	}

	dec[0] = enc[Rounds]
	for r := 1; r < Rounds; r++ {
		dec[r] = enc[Rounds-r]
		p.InvMixColumns(&dec[r])
	}
	dec[Rounds] = enc[0]

	clear(w[:])
	clear(in[:])
	clear(kg[:])

	return enc, dec
}
