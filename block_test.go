package aes192 //nolint:testpackage // comparing the fast path with the round-by-round pipelines

import (
	"crypto/sha3"
	"testing"

	"github.com/codahale/aes192/internal/aesni"
)

func TestPipelineMatchesRounds(t *testing.T) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("aes192 pipeline"))

	for _, p := range providers(t) {
		if _, ok := p.(aesni.Pipeline); !ok {
			continue
		}

		t.Run(p.Name(), func(t *testing.T) {
			for range 16 {
				var key [KeySize]byte
				var blocks [BatchSize * BlockSize]byte
				_, _ = drbg.Read(key[:])
				_, _ = drbg.Read(blocks[:])

				c, err := New(key[:])
				if err != nil {
					t.Fatal(err)
				}
				c.p, c.pl = p, p.(aesni.Pipeline)

				want := blocks
				encryptBatch(p, &c.enc, &want)
				got := blocks
				c.EncryptBatch(&got)
				if got != want {
					t.Fatalf("EncryptBatch = %x, want = %x", got, want)
				}

				decryptBatch(p, &c.dec, &want)
				c.DecryptBatch(&got)
				if got != want || got != blocks {
					t.Fatalf("DecryptBatch = %x, want = %x", got, blocks)
				}

				b := [BlockSize]byte(blocks[:])
				wantBlock := b
				encryptBlock(p, &c.enc, &wantBlock)
				c.EncryptBlock(&b)
				if b != wantBlock {
					t.Fatalf("EncryptBlock = %x, want = %x", b, wantBlock)
				}

				decryptBlock(p, &c.dec, &wantBlock)
				c.DecryptBlock(&b)
				if b != wantBlock {
					t.Fatalf("DecryptBlock = %x, want = %x", b, wantBlock)
				}
			}
		})
	}
}

func TestSoftwareHasNoPipeline(t *testing.T) {
	c, err := NewWithBackend(make([]byte, KeySize), Software)
	if err != nil {
		t.Fatal(err)
	}

	if c.pl != nil {
		t.Errorf("software cipher uses pipeline %T", c.pl)
	}
}
