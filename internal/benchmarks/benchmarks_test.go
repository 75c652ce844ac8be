package benchmarks_test

import (
	"crypto/aes"
	"testing"

	"github.com/codahale/aes192"
)

func BenchmarkEncryptBlock(b *testing.B) {
	for _, backend := range []aes192.Backend{aes192.Hardware, aes192.Software} {
		b.Run(backend.String(), func(b *testing.B) {
			c, err := aes192.NewWithBackend(make([]byte, aes192.KeySize), backend)
			if err != nil {
				b.Skip(err)
			}

			var block [aes192.BlockSize]byte
			b.SetBytes(int64(len(block)))
			b.ReportAllocs()
			for b.Loop() {
				c.EncryptBlock(&block)
			}
		})
	}
}

func BenchmarkDecryptBlock(b *testing.B) {
	for _, backend := range []aes192.Backend{aes192.Hardware, aes192.Software} {
		b.Run(backend.String(), func(b *testing.B) {
			c, err := aes192.NewWithBackend(make([]byte, aes192.KeySize), backend)
			if err != nil {
				b.Skip(err)
			}

			var block [aes192.BlockSize]byte
			b.SetBytes(int64(len(block)))
			b.ReportAllocs()
			for b.Loop() {
				c.DecryptBlock(&block)
			}
		})
	}
}

func BenchmarkEncryptBatch(b *testing.B) {
	for _, backend := range []aes192.Backend{aes192.Hardware, aes192.Software} {
		b.Run(backend.String(), func(b *testing.B) {
			c, err := aes192.NewWithBackend(make([]byte, aes192.KeySize), backend)
			if err != nil {
				b.Skip(err)
			}

			var blocks [aes192.BatchSize * aes192.BlockSize]byte
			b.SetBytes(int64(len(blocks)))
			b.ReportAllocs()
			for b.Loop() {
				c.EncryptBatch(&blocks)
			}
		})
	}
}

func BenchmarkDecryptBatch(b *testing.B) {
	for _, backend := range []aes192.Backend{aes192.Hardware, aes192.Software} {
		b.Run(backend.String(), func(b *testing.B) {
			c, err := aes192.NewWithBackend(make([]byte, aes192.KeySize), backend)
			if err != nil {
				b.Skip(err)
			}

			var blocks [aes192.BatchSize * aes192.BlockSize]byte
			b.SetBytes(int64(len(blocks)))
			b.ReportAllocs()
			for b.Loop() {
				c.DecryptBatch(&blocks)
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	key := make([]byte, aes192.KeySize)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = aes192.New(key)
	}
}

func BenchmarkCryptoAES(b *testing.B) {
	c, err := aes.NewCipher(make([]byte, aes192.KeySize))
	if err != nil {
		b.Fatal(err)
	}

	block := make([]byte, aes.BlockSize)
	b.SetBytes(int64(len(block)))
	b.ReportAllocs()
	for b.Loop() {
		c.Encrypt(block, block)
	}
}
