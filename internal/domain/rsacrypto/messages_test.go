//go:build unit
// +build unit

package rsacrypto

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearMessage(t *testing.T) {
	t.Run("wraps a copy of the input", func(t *testing.T) {
		data := []byte("hello world")
		message := NewClearMessage(data)

		data[0] = 'H'
		assert.Equal(t, []byte("hello world"), message.Bytes())

		out := message.Bytes()
		out[0] = 'H'
		assert.Equal(t, []byte("hello world"), message.Bytes())
	})

	t.Run("from UTF-8 string", func(t *testing.T) {
		message, err := NewClearMessageFromString("héllo", EncodingUTF8)
		require.NoError(t, err)
		assert.Equal(t, []byte("héllo"), message.Bytes())
	})

	t.Run("from ASCII string", func(t *testing.T) {
		message, err := NewClearMessageFromString("hello", EncodingASCII)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), message.Bytes())
	})

	t.Run("non-ASCII string rejected for ASCII encoding", func(t *testing.T) {
		_, err := NewClearMessageFromString("héllo", EncodingASCII)
		assert.ErrorIs(t, err, ErrStringToDataConversionFailed)
	})

	t.Run("invalid UTF-8 string rejected", func(t *testing.T) {
		_, err := NewClearMessageFromString(string([]byte{0xFF, 0xFE}), EncodingUTF8)
		assert.ErrorIs(t, err, ErrStringToDataConversionFailed)
	})

	t.Run("string conversion fails on invalid bytes", func(t *testing.T) {
		message := NewClearMessage([]byte{0xFF, 0xFE})

		_, err := message.StringWithEncoding(EncodingUTF8)
		assert.ErrorIs(t, err, ErrDataToStringConversionFailed)

		_, err = message.StringWithEncoding(EncodingASCII)
		assert.ErrorIs(t, err, ErrDataToStringConversionFailed)
	})

	t.Run("base64 projection", func(t *testing.T) {
		message := NewClearMessage([]byte("hello world"))
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello world")), message.Base64String())
	})
}

func TestEncryptedMessage(t *testing.T) {
	t.Run("base64 round-trip", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x02, 0xFF}
		message := NewEncryptedMessage(data)

		decoded, err := NewEncryptedMessageFromBase64(message.Base64String())
		require.NoError(t, err)
		assert.Equal(t, data, decoded.Bytes())
	})

	t.Run("malformed base64 rejected", func(t *testing.T) {
		_, err := NewEncryptedMessageFromBase64("not base64!!!")
		assert.ErrorIs(t, err, ErrInvalidBase64)
	})
}

func TestSignature(t *testing.T) {
	t.Run("base64 round-trip", func(t *testing.T) {
		data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		sig := NewSignature(data)

		decoded, err := NewSignatureFromBase64(sig.Base64String())
		require.NoError(t, err)
		assert.Equal(t, data, decoded.Bytes())
	})

	t.Run("malformed base64 rejected", func(t *testing.T) {
		_, err := NewSignatureFromBase64("%%%")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidBase64))
	})
}
