package rsacrypto

import (
	"errors"
	"fmt"
)

// Format errors
var (
	// ErrInvalidPEMFormat indicates input that is not a well-formed PEM block.
	ErrInvalidPEMFormat = errors.New("invalid PEM format")

	// ErrInvalidASN1Structure indicates input that is not a well-formed ASN.1 SEQUENCE.
	ErrInvalidASN1Structure = errors.New("invalid ASN.1 structure")

	// ErrInvalidBase64 indicates text that does not decode under the standard base64 alphabet.
	ErrInvalidBase64 = errors.New("invalid base64 text")

	// ErrStringToDataConversionFailed indicates a string that cannot be represented in the requested byte encoding.
	ErrStringToDataConversionFailed = errors.New("string to data conversion failed")

	// ErrDataToStringConversionFailed indicates bytes that are not valid under the requested string encoding.
	ErrDataToStringConversionFailed = errors.New("data to string conversion failed")
)

// Key errors
var (
	// ErrNotAPublicKey indicates a key handle whose class is not public.
	ErrNotAPublicKey = errors.New("key is not an RSA public key")

	// ErrNotAPrivateKey indicates a key handle whose class is not private.
	ErrNotAPrivateKey = errors.New("key is not an RSA private key")

	// ErrKeyResourceNotFound indicates a named key resource missing from its bundle.
	ErrKeyResourceNotFound = errors.New("key resource not found")

	// ErrKeyAlreadyReleased indicates a second release of an imported key's storage slot.
	ErrKeyAlreadyReleased = errors.New("key storage slot already released")
)

// ErrInvalidChunkParameters indicates a chunked transform configured with a
// non-positive chunk size, e.g. a block size smaller than the padding overhead.
var ErrInvalidChunkParameters = errors.New("invalid chunk parameters")

// KeyImportError indicates that the secure-storage collaborator rejected key
// bytes during import.
type KeyImportError struct {
	Reason error
}

func (e *KeyImportError) Error() string {
	return fmt.Sprintf("key import failed: %v", e.Reason)
}

func (e *KeyImportError) Unwrap() error { return e.Reason }

// ChunkOperationError indicates that the per-block primitive failed on a
// specific chunk of a chunked transform. No partial output accompanies it.
type ChunkOperationError struct {
	ChunkIndex int
	Status     error
}

func (e *ChunkOperationError) Error() string {
	return fmt.Sprintf("chunk operation failed at chunk %d: %v", e.ChunkIndex, e.Status)
}

func (e *ChunkOperationError) Unwrap() error { return e.Status }

// DigestTooLargeError indicates a digest that exceeds the raw-sign primitive's
// padding capacity for the key's block size.
type DigestTooLargeError struct {
	DigestSize int
	MaxAllowed int
}

func (e *DigestTooLargeError) Error() string {
	return fmt.Sprintf("digest of %d bytes exceeds the maximum of %d bytes for this key", e.DigestSize, e.MaxAllowed)
}

// SignatureCreationError indicates a raw-sign primitive failure.
type SignatureCreationError struct {
	Status error
}

func (e *SignatureCreationError) Error() string {
	return fmt.Sprintf("signature creation failed: %v", e.Status)
}

func (e *SignatureCreationError) Unwrap() error { return e.Status }

// SignatureVerificationError indicates an operational raw-verify failure,
// distinct from a definite signature mismatch.
type SignatureVerificationError struct {
	Status error
}

func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: %v", e.Status)
}

func (e *SignatureVerificationError) Unwrap() error { return e.Status }
