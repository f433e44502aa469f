package rsacrypto

// KeyClass distinguishes public from private key material.
type KeyClass string

// Key classes
const (
	KeyClassPublic  KeyClass = "public"
	KeyClassPrivate KeyClass = "private"
)

// VerifyResult is the three-state outcome of a raw signature verification.
// A definite mismatch is a distinct result, never an operational error.
type VerifyResult int

// Verification outcomes
const (
	// VerifyMatch means the signature matches the digest.
	VerifyMatch VerifyResult = iota
	// VerifyMismatch means the primitive definitively rejected the signature.
	VerifyMismatch
)

// KeyHandle is an opaque handle to an RSA key object. Implementations may sit
// atop a platform crypto library or a software big-integer backend. Handles
// are safe for concurrent use.
type KeyHandle interface {
	// Class reports whether the handle represents a public or private key.
	Class() KeyClass

	// BlockSize returns the key modulus size in bytes. Every ciphertext and
	// signature block produced through this handle has exactly this length.
	BlockSize() int

	// RawEncrypt encrypts a single chunk into one fixed-size block.
	// Only public-class handles support this operation.
	RawEncrypt(chunk []byte, padding Padding) ([]byte, error)

	// RawDecrypt decrypts a single fixed-size block into its payload.
	// Only private-class handles support this operation.
	RawDecrypt(block []byte, padding Padding) ([]byte, error)

	// RawSign signs a precomputed digest with the padding scheme implied by
	// the digest type. Only private-class handles support this operation.
	RawSign(digest []byte, digestType DigestType) ([]byte, error)

	// RawVerify checks a raw signature against a precomputed digest. It
	// returns VerifyMismatch with a nil error for a definite mismatch and a
	// non-nil error only for operational failures.
	RawVerify(digest, signature []byte, digestType DigestType) (VerifyResult, error)
}

// KeyStore is the secure-storage collaborator. Import inserts bare PKCS#1 key
// bytes under a caller-supplied unique tag and returns a handle; Release
// frees the slot associated with a tag. The core never inspects storage
// internals.
type KeyStore interface {
	Import(bare []byte, class KeyClass, tag string) (KeyHandle, error)
	Release(tag string) error
}

// CryptService encrypts and decrypts arbitrarily long messages by splitting
// them into key-block-sized chunks.
type CryptService interface {
	// Encrypt encrypts a clear message with a public key handle. The output
	// length is a whole multiple of the key block size.
	Encrypt(message *ClearMessage, key KeyHandle, padding Padding) (*EncryptedMessage, error)

	// Decrypt decrypts a message with a private key handle, inverting Encrypt
	// under the same padding scheme.
	Decrypt(message *EncryptedMessage, key KeyHandle, padding Padding) (*ClearMessage, error)
}

// SignatureService signs and verifies messages through a digest-then-sign
// protocol.
type SignatureService interface {
	// Sign digests the message and signs the digest with a private key handle.
	Sign(message *ClearMessage, key KeyHandle, digestType DigestType) (*Signature, error)

	// Verify digests the message and checks the signature with a public key
	// handle. It returns (false, nil) for a definite mismatch and a non-nil
	// error only for operational failures.
	Verify(message *ClearMessage, key KeyHandle, signature *Signature, digestType DigestType) (bool, error)
}

// KeyCodec converts between encoded key forms: PEM text, DER bytes and the
// bare PKCS#1 structure with or without its ASN.1 algorithm-identifier
// envelope.
type KeyCodec interface {
	// StripHeader removes the optional ASN.1 envelope (X.509
	// SubjectPublicKeyInfo or PKCS#8 PrivateKeyInfo) in front of a bare
	// PKCS#1 key structure. Already-bare input is returned unchanged.
	StripHeader(der []byte) ([]byte, error)

	// WrapPublicHeader wraps bare PKCS#1 public key bytes in an X.509
	// SubjectPublicKeyInfo envelope.
	WrapPublicHeader(bare []byte) ([]byte, error)

	// WrapPrivateHeader wraps bare PKCS#1 private key bytes in a PKCS#8
	// PrivateKeyInfo envelope.
	WrapPrivateHeader(bare []byte) ([]byte, error)

	// PEMEncode wraps DER bytes in a PEM block with the given label.
	PEMEncode(der []byte, label string) string

	// PEMDecode extracts the DER bytes of the first PEM block in text.
	PEMDecode(text string) ([]byte, error)

	// Base64Decode decodes standard-alphabet base64 text.
	Base64Decode(text string) ([]byte, error)

	// DERDecode validates that data is a single well-formed ASN.1 element and
	// returns it unchanged.
	DERDecode(data []byte) ([]byte, error)
}
