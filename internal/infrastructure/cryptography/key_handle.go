package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	"rsa_crypto_service/internal/domain/rsacrypto"
)

// publicKeyHandle is a software KeyHandle over an RSA public key. It supports
// encryption and signature verification only.
type publicKeyHandle struct {
	key *rsa.PublicKey
}

// NewPublicKeyHandle creates a KeyHandle over an RSA public key.
func NewPublicKeyHandle(key *rsa.PublicKey) rsacrypto.KeyHandle {
	return &publicKeyHandle{key: key}
}

// Class reports the public key class.
func (h *publicKeyHandle) Class() rsacrypto.KeyClass {
	return rsacrypto.KeyClassPublic
}

// BlockSize returns the modulus size in bytes.
func (h *publicKeyHandle) BlockSize() int {
	return h.key.Size()
}

// RawEncrypt encrypts a single chunk into one fixed-size block.
func (h *publicKeyHandle) RawEncrypt(chunk []byte, padding rsacrypto.Padding) ([]byte, error) {
	switch padding {
	case rsacrypto.PaddingPKCS1v15:
		return rsa.EncryptPKCS1v15(rand.Reader, h.key, chunk)
	case rsacrypto.PaddingNone:
		return rawPublicTransform(h.key, chunk)
	default:
		return nil, fmt.Errorf("unsupported padding scheme: %s", padding)
	}
}

// RawDecrypt is not available on public key handles.
func (h *publicKeyHandle) RawDecrypt(_ []byte, _ rsacrypto.Padding) ([]byte, error) {
	return nil, rsacrypto.ErrNotAPrivateKey
}

// RawSign is not available on public key handles.
func (h *publicKeyHandle) RawSign(_ []byte, _ rsacrypto.DigestType) ([]byte, error) {
	return nil, rsacrypto.ErrNotAPrivateKey
}

// RawVerify checks a raw PKCS#1 v1.5 signature against a precomputed digest.
// A definite mismatch is reported as VerifyMismatch with a nil error.
func (h *publicKeyHandle) RawVerify(digest, signature []byte, digestType rsacrypto.DigestType) (rsacrypto.VerifyResult, error) {
	err := rsa.VerifyPKCS1v15(h.key, digestType.CryptoHash(), digest, signature)
	if err == nil {
		return rsacrypto.VerifyMatch, nil
	}
	if errors.Is(err, rsa.ErrVerification) {
		return rsacrypto.VerifyMismatch, nil
	}
	return rsacrypto.VerifyMismatch, err
}

// privateKeyHandle is a software KeyHandle over an RSA private key. It
// supports decryption and signing only.
type privateKeyHandle struct {
	key *rsa.PrivateKey
}

// NewPrivateKeyHandle creates a KeyHandle over an RSA private key.
func NewPrivateKeyHandle(key *rsa.PrivateKey) rsacrypto.KeyHandle {
	return &privateKeyHandle{key: key}
}

// Class reports the private key class.
func (h *privateKeyHandle) Class() rsacrypto.KeyClass {
	return rsacrypto.KeyClassPrivate
}

// BlockSize returns the modulus size in bytes.
func (h *privateKeyHandle) BlockSize() int {
	return h.key.Size()
}

// RawEncrypt is not available on private key handles.
func (h *privateKeyHandle) RawEncrypt(_ []byte, _ rsacrypto.Padding) ([]byte, error) {
	return nil, rsacrypto.ErrNotAPublicKey
}

// RawDecrypt decrypts a single fixed-size block into its payload.
func (h *privateKeyHandle) RawDecrypt(block []byte, padding rsacrypto.Padding) ([]byte, error) {
	if len(block) != h.key.Size() {
		return nil, fmt.Errorf("ciphertext block is %d bytes, expected %d", len(block), h.key.Size())
	}
	switch padding {
	case rsacrypto.PaddingPKCS1v15:
		return rsa.DecryptPKCS1v15(rand.Reader, h.key, block)
	case rsacrypto.PaddingNone:
		return rawPrivateTransform(h.key, block)
	default:
		return nil, fmt.Errorf("unsupported padding scheme: %s", padding)
	}
}

// RawSign signs a precomputed digest with PKCS#1 v1.5 and the DigestInfo
// prefix implied by the digest type.
func (h *privateKeyHandle) RawSign(digest []byte, digestType rsacrypto.DigestType) ([]byte, error) {
	return rsa.SignPKCS1v15(rand.Reader, h.key, digestType.CryptoHash(), digest)
}

// RawVerify is not available on private key handles.
func (h *privateKeyHandle) RawVerify(_, _ []byte, _ rsacrypto.DigestType) (rsacrypto.VerifyResult, error) {
	return rsacrypto.VerifyMismatch, rsacrypto.ErrNotAPublicKey
}

// rawPublicTransform applies the textbook RSA public operation m^e mod n,
// left-padding the result to the full block size.
func rawPublicTransform(key *rsa.PublicKey, chunk []byte) ([]byte, error) {
	m := new(big.Int).SetBytes(chunk)
	if m.Cmp(key.N) >= 0 {
		return nil, fmt.Errorf("chunk value exceeds the RSA modulus")
	}
	c := new(big.Int).Exp(m, big.NewInt(int64(key.E)), key.N)
	return leftPad(c.Bytes(), key.Size()), nil
}

// rawPrivateTransform applies the textbook RSA private operation c^d mod n,
// left-padding the result to the full block size.
func rawPrivateTransform(key *rsa.PrivateKey, block []byte) ([]byte, error) {
	c := new(big.Int).SetBytes(block)
	if c.Cmp(key.N) >= 0 {
		return nil, fmt.Errorf("block value exceeds the RSA modulus")
	}
	m := new(big.Int).Exp(c, key.D, key.N)
	return leftPad(m.Bytes(), key.Size()), nil
}

func leftPad(data []byte, size int) []byte {
	if len(data) >= size {
		return data
	}
	out := make([]byte, size)
	copy(out[size-len(data):], data)
	return out
}
