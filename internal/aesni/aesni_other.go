//go:build !amd64 || purego

package aesni

var hardware Provider //nolint:gochecknoglobals // never available without assembly
