// Package keystore provides an in-process implementation of the
// secure-storage collaborator. Keys are parsed from bare PKCS#1 bytes and
// held in a tag-indexed map; release frees a slot exactly once.
package keystore

import (
	"crypto/x509"
	"fmt"
	"sync"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/infrastructure/cryptography"
	"rsa_crypto_service/internal/pkg/logger"
	"rsa_crypto_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// keyImportSpec carries the attributes validated on every import.
type keyImportSpec struct {
	Algorithm string `validate:"required,oneof=RSA"`
	KeySize   uint   `validate:"required,rsa_keysize"`
}

// InMemoryKeyStore is a mutex-guarded KeyStore holding imported key handles
// by tag. Tags are generated by the caller before insertion, so concurrent
// imports never race on identifier generation.
type InMemoryKeyStore struct {
	mu       sync.Mutex
	entries  map[string]rsacrypto.KeyHandle
	validate *validator.Validate
	logger   logger.Logger
}

// NewInMemoryKeyStore creates an empty in-memory key store.
func NewInMemoryKeyStore(log logger.Logger) (*InMemoryKeyStore, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("rsa_keysize", validators.RSAKeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register key size validation: %w", err)
	}

	return &InMemoryKeyStore{
		entries:  make(map[string]rsacrypto.KeyHandle),
		validate: validate,
		logger:   log,
	}, nil
}

// Import parses bare PKCS#1 key bytes as the requested class, validates the
// modulus size and stores the resulting handle under tag. Corrupt bytes and
// tag collisions are rejected.
func (s *InMemoryKeyStore) Import(bare []byte, class rsacrypto.KeyClass, tag string) (rsacrypto.KeyHandle, error) {
	handle, bits, err := parseBareKey(bare, class)
	if err != nil {
		return nil, err
	}

	spec := &keyImportSpec{Algorithm: "RSA", KeySize: uint(bits)}
	if err := s.validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("unsupported RSA key size %d: %w", bits, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[tag]; exists {
		return nil, fmt.Errorf("storage tag %q already in use", tag)
	}
	s.entries[tag] = handle

	s.logger.Debug("Stored ", class, " key under tag ", tag)
	return handle, nil
}

// Release frees the slot associated with tag. Releasing an unknown or
// already-released tag is an error.
func (s *InMemoryKeyStore) Release(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[tag]; !exists {
		return fmt.Errorf("no storage slot for tag %q", tag)
	}
	delete(s.entries, tag)

	s.logger.Debug("Released storage slot for tag ", tag)
	return nil
}

// Len reports the number of live storage slots.
func (s *InMemoryKeyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func parseBareKey(bare []byte, class rsacrypto.KeyClass) (rsacrypto.KeyHandle, int, error) {
	switch class {
	case rsacrypto.KeyClassPublic:
		pub, err := x509.ParsePKCS1PublicKey(bare)
		if err != nil {
			return nil, 0, fmt.Errorf("bytes are not a PKCS#1 RSA public key: %w", err)
		}
		return cryptography.NewPublicKeyHandle(pub), pub.N.BitLen(), nil

	case rsacrypto.KeyClassPrivate:
		priv, err := x509.ParsePKCS1PrivateKey(bare)
		if err != nil {
			return nil, 0, fmt.Errorf("bytes are not a PKCS#1 RSA private key: %w", err)
		}
		if err := priv.Validate(); err != nil {
			return nil, 0, fmt.Errorf("private key failed validation: %w", err)
		}
		return cryptography.NewPrivateKeyHandle(priv), priv.N.BitLen(), nil

	default:
		return nil, 0, fmt.Errorf("unknown key class: %s", class)
	}
}
