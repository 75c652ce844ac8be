package aes192

import "github.com/codahale/aes192/internal/aesni"

// encryptBatch applies each round key to all lanes before moving to the next round key. Keep it key-major: the eight
// rounds at each step are independent and can be in flight at the same time.
func encryptBatch(p aesni.Provider, keys *schedule, blocks *[BatchSize * BlockSize]byte) {
	p.XOR8(blocks, &keys[0])
	for r := 1; r < Rounds; r++ {
		p.Enc8(blocks, &keys[r])
	}
	p.EncLast8(blocks, &keys[Rounds])
}

func decryptBatch(p aesni.Provider, keys *schedule, blocks *[BatchSize * BlockSize]byte) {
	p.XOR8(blocks, &keys[0])
	for r := 1; r < Rounds; r++ {
		p.Dec8(blocks, &keys[r])
	}
	p.DecLast8(blocks, &keys[Rounds])
}
