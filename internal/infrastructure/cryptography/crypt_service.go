package cryptography

import (
	"fmt"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/pkg/logger"
)

// cryptService struct that implements the CryptService interface
type cryptService struct {
	logger logger.Logger
}

// NewCryptService creates and returns a new instance of cryptService
func NewCryptService(logger logger.Logger) (rsacrypto.CryptService, error) {
	return &cryptService{
		logger: logger,
	}, nil
}

// Encrypt encrypts a clear message with a public key handle, splitting the
// plaintext into chunks sized to the key block minus the padding overhead.
// Every chunk produces one full-size ciphertext block.
func (s *cryptService) Encrypt(message *rsacrypto.ClearMessage, key rsacrypto.KeyHandle, padding rsacrypto.Padding) (*rsacrypto.EncryptedMessage, error) {
	if key == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	if key.Class() != rsacrypto.KeyClassPublic {
		return nil, rsacrypto.ErrNotAPublicKey
	}

	maxChunkSize := key.BlockSize() - padding.Overhead()
	if maxChunkSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d cannot carry the %d-byte padding overhead",
			rsacrypto.ErrInvalidChunkParameters, key.BlockSize(), padding.Overhead())
	}

	plainText := message.Bytes()

	// PKCS#1 v1.5 can pad an empty payload; an empty message still yields one
	// ciphertext block so the output length stays a multiple of the block size.
	if len(plainText) == 0 && padding == rsacrypto.PaddingPKCS1v15 {
		block, err := key.RawEncrypt(nil, padding)
		if err != nil {
			return nil, &rsacrypto.ChunkOperationError{ChunkIndex: 0, Status: err}
		}
		return rsacrypto.NewEncryptedMessage(block), nil
	}

	cipherText, err := TransformChunks(plainText, maxChunkSize, func(chunk []byte) ([]byte, error) {
		return key.RawEncrypt(chunk, padding)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RSA encryption succeeded")
	return rsacrypto.NewEncryptedMessage(cipherText), nil
}

// Decrypt decrypts a message with a private key handle. Ciphertext blocks are
// fixed-size, so the chunk size is always exactly the key block size.
func (s *cryptService) Decrypt(message *rsacrypto.EncryptedMessage, key rsacrypto.KeyHandle, padding rsacrypto.Padding) (*rsacrypto.ClearMessage, error) {
	if key == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	if key.Class() != rsacrypto.KeyClassPrivate {
		return nil, rsacrypto.ErrNotAPrivateKey
	}

	plainText, err := TransformChunks(message.Bytes(), key.BlockSize(), func(chunk []byte) ([]byte, error) {
		return key.RawDecrypt(chunk, padding)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RSA decryption succeeded")
	return rsacrypto.NewClearMessage(plainText), nil
}
