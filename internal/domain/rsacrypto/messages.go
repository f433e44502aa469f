package rsacrypto

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// StringEncoding names a byte encoding for ClearMessage string conversion.
type StringEncoding string

// Supported string encodings
const (
	EncodingUTF8  StringEncoding = "utf-8"
	EncodingASCII StringEncoding = "ascii"
)

// ClearMessage wraps an immutable plaintext byte buffer.
type ClearMessage struct {
	data []byte
}

// NewClearMessage creates a ClearMessage from raw bytes. The input is copied.
func NewClearMessage(data []byte) *ClearMessage {
	return &ClearMessage{data: copyBytes(data)}
}

// NewClearMessageFromString creates a ClearMessage from a string in the
// requested encoding. It fails when the string cannot be represented in that
// encoding.
func NewClearMessageFromString(s string, encoding StringEncoding) (*ClearMessage, error) {
	data := []byte(s)
	if err := validateEncoding(data, encoding); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStringToDataConversionFailed, err)
	}
	return &ClearMessage{data: data}, nil
}

// Bytes returns a copy of the plaintext bytes.
func (m *ClearMessage) Bytes() []byte {
	return copyBytes(m.data)
}

// Len returns the plaintext length in bytes.
func (m *ClearMessage) Len() int {
	return len(m.data)
}

// Base64String returns the plaintext as standard-alphabet base64 text.
func (m *ClearMessage) Base64String() string {
	return base64.StdEncoding.EncodeToString(m.data)
}

// StringWithEncoding converts the plaintext bytes to a string, failing when
// the bytes are not valid under the requested encoding.
func (m *ClearMessage) StringWithEncoding(encoding StringEncoding) (string, error) {
	if err := validateEncoding(m.data, encoding); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDataToStringConversionFailed, err)
	}
	return string(m.data), nil
}

// EncryptedMessage wraps an immutable ciphertext byte buffer, possibly a
// concatenation of fixed-size ciphertext blocks.
type EncryptedMessage struct {
	data []byte
}

// NewEncryptedMessage creates an EncryptedMessage from raw bytes. The input is copied.
func NewEncryptedMessage(data []byte) *EncryptedMessage {
	return &EncryptedMessage{data: copyBytes(data)}
}

// NewEncryptedMessageFromBase64 creates an EncryptedMessage from base64 text.
func NewEncryptedMessageFromBase64(text string) (*EncryptedMessage, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return &EncryptedMessage{data: data}, nil
}

// Bytes returns a copy of the ciphertext bytes.
func (m *EncryptedMessage) Bytes() []byte {
	return copyBytes(m.data)
}

// Len returns the ciphertext length in bytes.
func (m *EncryptedMessage) Len() int {
	return len(m.data)
}

// Base64String returns the ciphertext as standard-alphabet base64 text.
func (m *EncryptedMessage) Base64String() string {
	return base64.StdEncoding.EncodeToString(m.data)
}

// Signature wraps an immutable raw signature value.
type Signature struct {
	data []byte
}

// NewSignature creates a Signature from raw bytes. The input is copied.
func NewSignature(data []byte) *Signature {
	return &Signature{data: copyBytes(data)}
}

// NewSignatureFromBase64 creates a Signature from base64 text.
func NewSignatureFromBase64(text string) (*Signature, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return &Signature{data: data}, nil
}

// Bytes returns a copy of the signature bytes.
func (s *Signature) Bytes() []byte {
	return copyBytes(s.data)
}

// Base64String returns the signature as standard-alphabet base64 text.
func (s *Signature) Base64String() string {
	return base64.StdEncoding.EncodeToString(s.data)
}

func validateEncoding(data []byte, encoding StringEncoding) error {
	switch encoding {
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return fmt.Errorf("bytes are not valid UTF-8")
		}
	case EncodingASCII:
		for _, b := range data {
			if b > 0x7F {
				return fmt.Errorf("byte 0x%02X is outside the ASCII range", b)
			}
		}
	default:
		return fmt.Errorf("unsupported encoding: %s", encoding)
	}
	return nil
}

func copyBytes(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
