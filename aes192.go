// Package aes192 implements the AES block cipher with 192-bit keys.
//
// A Cipher expands its key once into an encryption and a decryption schedule of 13 round keys and never changes
// afterwards, so it is safe for concurrent use. Blocks are transformed in place, either one at a time or eight at a
// time; the eight-block functions interleave the rounds of independent blocks to keep the AES units busy.
//
// On amd64 the rounds use the AES-NI instruction set. On other architectures, or when built with the purego tag, a
// bitsliced software implementation of the same instructions is used. NewWithBackend(key, Hardware) refuses to fall
// back to software.
//
// This package provides no mode of operation. Cipher satisfies crypto/cipher.Block and can be wrapped by
// crypto/cipher's modes.
package aes192

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/codahale/aes192/internal/aesni"
)

const (
	// KeySize is the size of an AES-192 key in bytes.
	KeySize = 24

	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// BatchSize is the number of blocks transformed by EncryptBatch and DecryptBatch.
	BatchSize = 8

	// Rounds is the number of AES-192 rounds. A schedule holds Rounds+1 round keys.
	Rounds = 12
)

// A Backend selects the implementation of the AES round primitives.
type Backend int

const (
	// Auto uses AES-NI if the CPU supports it and the software implementation otherwise.
	Auto Backend = iota

	// Hardware requires AES-NI.
	Hardware

	// Software always uses the bitsliced software implementation.
	Software
)

func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case Hardware:
		return "hardware"
	case Software:
		return "software"
	default:
		return "Backend(" + strconv.Itoa(int(b)) + ")"
	}
}

// ErrUnsupported is returned by NewWithBackend when the Hardware backend is requested and the CPU does not support
// AES-NI.
var ErrUnsupported = aesni.ErrUnsupported

// ErrInvalidBackend is returned by NewWithBackend for an unknown Backend value.
var ErrInvalidBackend = errors.New("aes192: invalid backend")

// KeySizeError is returned when a key is not KeySize bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes192: invalid key size " + strconv.Itoa(int(k))
}

// A Cipher is an AES-192 instance with a fixed key.
type Cipher struct {
	p   aesni.Provider
	pl  aesni.Pipeline // nil if p has no whole-schedule fast path
	enc schedule
	dec schedule
}

var _ cipher.Block = (*Cipher)(nil)

// New returns a Cipher using the fastest available backend. The key must be KeySize bytes long.
func New(key []byte) (*Cipher, error) {
	return NewWithBackend(key, Auto)
}

// NewWithBackend returns a Cipher using the given backend. If Hardware is requested and not available, it returns an
// error wrapping ErrUnsupported rather than falling back to software.
func NewWithBackend(key []byte, backend Backend) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	var p aesni.Provider
	switch backend {
	case Auto:
		p = aesni.Detect()
	case Hardware:
		hw, err := aesni.Hardware()
		if err != nil {
			return nil, fmt.Errorf("aes192: %s backend: %w", backend, err)
		}
		p = hw
	case Software:
		p = aesni.Software()
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidBackend, backend)
	}

	c := &Cipher{p: p}
	c.pl, _ = p.(aesni.Pipeline)
	k := [KeySize]byte(key)
	c.enc, c.dec = expandKey(p, &k)
	clear(k[:])
	return c, nil
}

// Implementation returns the name of the implementation of the round primitives, e.g. "aesni" or "generic".
func (c *Cipher) Implementation() string {
	return c.p.Name()
}

// EncryptBlock encrypts block in place.
func (c *Cipher) EncryptBlock(block *[BlockSize]byte) {
	if c.pl != nil {
		c.pl.EncryptBlock(&c.enc, block)
		return
	}
	encryptBlock(c.p, &c.enc, block)
}

// DecryptBlock decrypts block in place.
func (c *Cipher) DecryptBlock(block *[BlockSize]byte) {
	if c.pl != nil {
		c.pl.DecryptBlock(&c.dec, block)
		return
	}
	decryptBlock(c.p, &c.dec, block)
}

// EncryptBatch encrypts BatchSize independent, concatenated blocks in place. The result is the same as calling
// EncryptBlock on each block.
func (c *Cipher) EncryptBatch(blocks *[BatchSize * BlockSize]byte) {
	if c.pl != nil {
		c.pl.EncryptBatch(&c.enc, blocks)
		return
	}
	encryptBatch(c.p, &c.enc, blocks)
}

// DecryptBatch decrypts BatchSize independent, concatenated blocks in place. The result is the same as calling
// DecryptBlock on each block.
func (c *Cipher) DecryptBatch(blocks *[BatchSize * BlockSize]byte) {
	if c.pl != nil {
		c.pl.DecryptBatch(&c.dec, blocks)
		return
	}
	decryptBatch(c.p, &c.dec, blocks)
}

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block of src into dst. Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	b := prepareBlock(dst, src)
	c.EncryptBlock(b)
}

// Decrypt decrypts the first block of src into dst. Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	b := prepareBlock(dst, src)
	c.DecryptBlock(b)
}

// prepareBlock copies the first block of src into dst and returns it for in-place transformation.
func prepareBlock(dst, src []byte) *[BlockSize]byte {
	if len(src) < BlockSize {
		panic("aes192: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes192: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes192: invalid buffer overlap")
	}

	b := (*[BlockSize]byte)(dst)
	copy(b[:], src)
	return b
}

// inexactOverlap reports whether x and y share memory at any non-corresponding index.
func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
