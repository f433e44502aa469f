//go:build unit
// +build unit

package rsacrypto

import (
	"crypto"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestTypeSize(t *testing.T) {
	tests := []struct {
		digestType DigestType
		size       int
	}{
		{DigestSHA1, 20},
		{DigestSHA224, 28},
		{DigestSHA256, 32},
		{DigestSHA384, 48},
		{DigestSHA512, 64},
	}

	for _, tt := range tests {
		t.Run(string(tt.digestType), func(t *testing.T) {
			assert.Equal(t, tt.size, tt.digestType.Size())
			assert.Len(t, tt.digestType.Hash([]byte("abc")), tt.size)
		})
	}
}

func TestDigestTypeHash_KnownVectors(t *testing.T) {
	input := []byte("abc")

	tests := []struct {
		digestType DigestType
		expected   string
	}{
		{DigestSHA1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{DigestSHA224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{DigestSHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{DigestSHA384, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{DigestSHA512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(string(tt.digestType), func(t *testing.T) {
			assert.Equal(t, tt.expected, hex.EncodeToString(tt.digestType.Hash(input)))
		})
	}
}

func TestDigestTypeHash_Deterministic(t *testing.T) {
	data := []byte("the same input twice")
	assert.Equal(t, DigestSHA256.Hash(data), DigestSHA256.Hash(data))
}

func TestDigestTypeCryptoHash(t *testing.T) {
	tests := []struct {
		digestType DigestType
		expected   crypto.Hash
	}{
		{DigestSHA1, crypto.SHA1},
		{DigestSHA224, crypto.SHA224},
		{DigestSHA256, crypto.SHA256},
		{DigestSHA384, crypto.SHA384},
		{DigestSHA512, crypto.SHA512},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.digestType.CryptoHash())
	}
}

func TestPaddingOverhead(t *testing.T) {
	assert.Equal(t, 11, PaddingPKCS1v15.Overhead())
	assert.Equal(t, 0, PaddingNone.Overhead())
}
