package aes192_test

import (
	"encoding/hex"
	"fmt"

	"github.com/codahale/aes192"
)

func Example() {
	key, _ := hex.DecodeString("8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b")

	c, err := aes192.New(key)
	if err != nil {
		panic(err)
	}

	var block [aes192.BlockSize]byte
	_, _ = hex.Decode(block[:], []byte("6bc1bee22e409f96e93d7e117393172a"))

	c.EncryptBlock(&block)
	fmt.Printf("%x\n", block)

	c.DecryptBlock(&block)
	fmt.Printf("%x\n", block)

	// Output:
	// bd334f1d6e45f25ff712a214571fa5cc
	// 6bc1bee22e409f96e93d7e117393172a
}

func ExampleCipher_EncryptBatch() {
	key, _ := hex.DecodeString("8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b")

	c, err := aes192.New(key)
	if err != nil {
		panic(err)
	}

	// Eight independent blocks; the first two are SP 800-38A plaintexts.
	var blocks [aes192.BatchSize * aes192.BlockSize]byte
	_, _ = hex.Decode(blocks[0:16], []byte("6bc1bee22e409f96e93d7e117393172a"))
	_, _ = hex.Decode(blocks[16:32], []byte("ae2d8a571e03ac9c9eb76fac45af8e51"))

	c.EncryptBatch(&blocks)
	fmt.Printf("%x\n", blocks[0:16])
	fmt.Printf("%x\n", blocks[16:32])

	// Output:
	// bd334f1d6e45f25ff712a214571fa5cc
	// 974104846d0ad3ad7734ecb3ecee4eef
}
