// Command aes192_selftest runs the AES-192 known-answer tests against the selected backend and optionally encrypts or
// decrypts hex-encoded blocks given on the command line.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/aes192"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Backend string `long:"backend" description:"The AES round implementation to use." choice:"auto" choice:"hardware" choice:"software" default:"auto"`
	Key     string `long:"key" short:"k" description:"Hex-encoded 24-byte key for the blocks given as arguments."`
	Decrypt bool   `long:"decrypt" short:"d" description:"Decrypt the blocks instead of encrypting them."`
	Args    struct {
		Blocks []string `positional-arg-name:"block" description:"Hex-encoded 16-byte blocks."`
	} `positional-args:"yes"`
}

var backends = map[string]aes192.Backend{ //nolint:gochecknoglobals // lookup table
	"auto":     aes192.Auto,
	"hardware": aes192.Hardware,
	"software": aes192.Software,
}

// SP 800-38A F.1.3 and FIPS 197 C.2.
var vectors = []struct { //nolint:gochecknoglobals // test vectors
	key, pt, ct string
}{
	{"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", "6bc1bee22e409f96e93d7e117393172a", "bd334f1d6e45f25ff712a214571fa5cc"},
	{"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", "ae2d8a571e03ac9c9eb76fac45af8e51", "974104846d0ad3ad7734ecb3ecee4eef"},
	{"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", "30c81c46a35ce411e5fbc1191a0a52ef", "ef7afd2270e2e60adce0ba2face6444e"},
	{"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", "f69f2445df4f9b17ad2b417be66c3710", "9a4b41ba738d6c72fb16691603c18e0e"},
	{"000102030405060708090a0b0c0d0e0f1011121314151617", "00112233445566778899aabbccddeeff", "dda97ca4864cdfe06eaf70a0ec0d7191"},
}

var errMismatch = errors.New("known-answer test failed")

func main() {
	log := slog.New(slog.Default().Handler())

	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	backend := backends[opts.Backend]

	if err := selfTest(log, backend); err != nil {
		log.Error("self-test failed", "backend", backend, "err", err)
		os.Exit(1)
	}

	if len(opts.Args.Blocks) == 0 {
		return
	}

	if err := transform(&opts, backend); err != nil {
		log.Error("failed to transform blocks", "err", err)
		os.Exit(1)
	}
}

func selfTest(log *slog.Logger, backend aes192.Backend) error {
	for i, v := range vectors {
		key, _ := hex.DecodeString(v.key)
		pt, _ := hex.DecodeString(v.pt)
		ct, _ := hex.DecodeString(v.ct)

		c, err := aes192.NewWithBackend(key, backend)
		if err != nil {
			return err
		}

		block := [aes192.BlockSize]byte(pt)
		c.EncryptBlock(&block)
		if !bytes.Equal(block[:], ct) {
			return fmt.Errorf("%w: vector %d encrypted to %x, want %x", errMismatch, i, block, ct)
		}

		var batch [aes192.BatchSize * aes192.BlockSize]byte
		for j := range aes192.BatchSize {
			copy(batch[j*aes192.BlockSize:], ct)
		}
		c.DecryptBatch(&batch)
		for j := range aes192.BatchSize {
			if got := batch[j*aes192.BlockSize : (j+1)*aes192.BlockSize]; !bytes.Equal(got, pt) {
				return fmt.Errorf("%w: vector %d batch lane %d decrypted to %x, want %x", errMismatch, i, j, got, pt)
			}
		}

		log.Debug("vector passed", "vector", i, "impl", c.Implementation())
	}

	log.Info("self-test passed", "backend", backend, "vectors", len(vectors))
	return nil
}

func transform(opts *options, backend aes192.Backend) error {
	key, err := hex.DecodeString(opts.Key)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	c, err := aes192.NewWithBackend(key, backend)
	if err != nil {
		return err
	}

	blocks := make([]byte, 0, len(opts.Args.Blocks)*aes192.BlockSize)
	for _, s := range opts.Args.Blocks {
		b, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("invalid block %q: %w", s, err)
		}
		if len(b) != aes192.BlockSize {
			return fmt.Errorf("invalid block %q: %d bytes, want %d", s, len(b), aes192.BlockSize)
		}
		blocks = append(blocks, b...)
	}

	// Full batches of eight, then single blocks.
	rest := blocks
	for ; len(rest) >= aes192.BatchSize*aes192.BlockSize; rest = rest[aes192.BatchSize*aes192.BlockSize:] {
		batch := (*[aes192.BatchSize * aes192.BlockSize]byte)(rest)
		if opts.Decrypt {
			c.DecryptBatch(batch)
		} else {
			c.EncryptBatch(batch)
		}
	}
	for ; len(rest) > 0; rest = rest[aes192.BlockSize:] {
		block := (*[aes192.BlockSize]byte)(rest)
		if opts.Decrypt {
			c.DecryptBlock(block)
		} else {
			c.EncryptBlock(block)
		}
	}

	for i := 0; i < len(blocks); i += aes192.BlockSize {
		_, _ = fmt.Fprintln(os.Stdout, hex.EncodeToString(blocks[i:i+aes192.BlockSize]))
	}
	return nil
}
