package aes192

import "github.com/codahale/aes192/internal/aesni"

func encryptBlock(p aesni.Provider, keys *schedule, b *[BlockSize]byte) {
	p.XOR(b, &keys[0])
	for r := 1; r < Rounds; r++ {
		p.Enc(b, &keys[r])
	}
	p.EncLast(b, &keys[Rounds])
}

// decryptBlock runs the equivalent inverse cipher. The schedule is already reversed, so it walks forward.
func decryptBlock(p aesni.Provider, keys *schedule, b *[BlockSize]byte) {
	p.XOR(b, &keys[0])
	for r := 1; r < Rounds; r++ {
		p.Dec(b, &keys[r])
	}
	p.DecLast(b, &keys[Rounds])
}
