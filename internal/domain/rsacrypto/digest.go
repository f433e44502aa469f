package rsacrypto

import (
	"crypto"
	"crypto/sha1" // #nosec G505 -- SHA-1 retained for interoperability with legacy signatures
	"crypto/sha256"
	"crypto/sha512"
)

// DigestType selects the hash algorithm used by signing and verification.
type DigestType string

// Supported digest algorithms
const (
	DigestSHA1   DigestType = "sha1"
	DigestSHA224 DigestType = "sha224"
	DigestSHA256 DigestType = "sha256"
	DigestSHA384 DigestType = "sha384"
	DigestSHA512 DigestType = "sha512"
)

// Size returns the fixed digest length in bytes, or 0 for an unknown type.
func (d DigestType) Size() int {
	switch d {
	case DigestSHA1:
		return sha1.Size
	case DigestSHA224:
		return sha256.Size224
	case DigestSHA256:
		return sha256.Size
	case DigestSHA384:
		return sha512.Size384
	case DigestSHA512:
		return sha512.Size
	default:
		return 0
	}
}

// Hash computes the digest of data. The output length equals Size() and the
// function is deterministic with no failure modes. Unknown types hash as
// SHA-256.
func (d DigestType) Hash(data []byte) []byte {
	switch d {
	case DigestSHA1:
		sum := sha1.Sum(data) // #nosec G401
		return sum[:]
	case DigestSHA224:
		sum := sha256.Sum224(data)
		return sum[:]
	case DigestSHA384:
		sum := sha512.Sum384(data)
		return sum[:]
	case DigestSHA512:
		sum := sha512.Sum512(data)
		return sum[:]
	default:
		sum := sha256.Sum256(data)
		return sum[:]
	}
}

// CryptoHash maps the digest type to the identifier the PKCS#1 v1.5
// sign/verify primitive uses to select its DigestInfo prefix.
func (d DigestType) CryptoHash() crypto.Hash {
	switch d {
	case DigestSHA1:
		return crypto.SHA1
	case DigestSHA224:
		return crypto.SHA224
	case DigestSHA384:
		return crypto.SHA384
	case DigestSHA512:
		return crypto.SHA512
	default:
		return crypto.SHA256
	}
}
