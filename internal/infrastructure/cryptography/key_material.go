package cryptography

import (
	"sync"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// PublicKey owns an RSA public key handle, the original encoded bytes when
// the key was imported, and the storage tag used to release the key's
// secure-storage slot.
type PublicKey struct {
	handle  rsacrypto.KeyHandle
	encoded []byte
	keyMaterial
}

// PrivateKey owns an RSA private key handle, the original encoded bytes when
// the key was imported, and the storage tag used to release the key's
// secure-storage slot.
type PrivateKey struct {
	handle  rsacrypto.KeyHandle
	encoded []byte
	keyMaterial
}

// keyMaterial tracks the storage lifecycle shared by both key variants.
// Imported keys carry a store reference and tag; wrapped keys carry neither
// and never release anything.
type keyMaterial struct {
	store      rsacrypto.KeyStore
	storageTag string

	mu       sync.Mutex
	released bool
}

// release frees the storage slot exactly once. Wrapped keys have no slot and
// close without effect.
func (m *keyMaterial) release() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	if m.released {
		return rsacrypto.ErrKeyAlreadyReleased
	}
	m.released = true
	return m.store.Release(m.storageTag)
}

// Handle returns the underlying key handle.
func (k *PublicKey) Handle() rsacrypto.KeyHandle { return k.handle }

// EncodedBytes returns a copy of the original encoded bytes, or nil for a
// wrapped key.
func (k *PublicKey) EncodedBytes() []byte { return cloneBytes(k.encoded) }

// StorageTag returns the secure-storage tag, empty for a wrapped key.
func (k *PublicKey) StorageTag() string { return k.storageTag }

// Close releases the key's secure-storage slot. Closing an imported key twice
// is an error; closing a wrapped key is a no-op.
func (k *PublicKey) Close() error { return k.release() }

// Handle returns the underlying key handle.
func (k *PrivateKey) Handle() rsacrypto.KeyHandle { return k.handle }

// EncodedBytes returns a copy of the original encoded bytes, or nil for a
// wrapped key.
func (k *PrivateKey) EncodedBytes() []byte { return cloneBytes(k.encoded) }

// StorageTag returns the secure-storage tag, empty for a wrapped key.
func (k *PrivateKey) StorageTag() string { return k.storageTag }

// Close releases the key's secure-storage slot. Closing an imported key twice
// is an error; closing a wrapped key is a no-op.
func (k *PrivateKey) Close() error { return k.release() }

// WrapPublicKey wraps a caller-owned handle without taking over its storage
// lifecycle. It fails when the handle is not public class.
func WrapPublicKey(handle rsacrypto.KeyHandle) (*PublicKey, error) {
	if handle.Class() != rsacrypto.KeyClassPublic {
		return nil, rsacrypto.ErrNotAPublicKey
	}
	return &PublicKey{handle: handle}, nil
}

// WrapPrivateKey wraps a caller-owned handle without taking over its storage
// lifecycle. It fails when the handle is not private class.
func WrapPrivateKey(handle rsacrypto.KeyHandle) (*PrivateKey, error) {
	if handle.Class() != rsacrypto.KeyClassPrivate {
		return nil, rsacrypto.ErrNotAPrivateKey
	}
	return &PrivateKey{handle: handle}, nil
}

// KeyImporter imports encoded RSA keys into a secure-storage collaborator,
// handling ASN.1 envelope stripping and storage-tag generation.
type KeyImporter struct {
	codec  rsacrypto.KeyCodec
	store  rsacrypto.KeyStore
	logger logger.Logger
}

// NewKeyImporter creates a KeyImporter bound to a codec and a key store.
func NewKeyImporter(codec rsacrypto.KeyCodec, store rsacrypto.KeyStore, logger logger.Logger) (*KeyImporter, error) {
	return &KeyImporter{
		codec:  codec,
		store:  store,
		logger: logger,
	}, nil
}

// ImportPublicKey strips the optional ASN.1 envelope from DER-encoded public
// key bytes and imports the bare structure into secure storage under a fresh
// unique tag. The original bytes are retained on the returned key.
func (i *KeyImporter) ImportPublicKey(der []byte) (*PublicKey, error) {
	bare, err := i.codec.StripHeader(der)
	if err != nil {
		return nil, err
	}

	tag := uuid.NewString()
	handle, err := i.store.Import(bare, rsacrypto.KeyClassPublic, tag)
	if err != nil {
		return nil, &rsacrypto.KeyImportError{Reason: err}
	}
	if handle.Class() != rsacrypto.KeyClassPublic {
		_ = i.store.Release(tag)
		return nil, rsacrypto.ErrNotAPublicKey
	}

	i.logger.Info("Imported RSA public key with storage tag ", tag)
	return &PublicKey{
		handle:      handle,
		encoded:     cloneBytes(der),
		keyMaterial: keyMaterial{store: i.store, storageTag: tag},
	}, nil
}

// ImportPrivateKey strips the optional ASN.1 envelope from DER-encoded
// private key bytes and imports the bare structure into secure storage under
// a fresh unique tag. The original bytes are retained on the returned key.
func (i *KeyImporter) ImportPrivateKey(der []byte) (*PrivateKey, error) {
	bare, err := i.codec.StripHeader(der)
	if err != nil {
		return nil, err
	}

	tag := uuid.NewString()
	handle, err := i.store.Import(bare, rsacrypto.KeyClassPrivate, tag)
	if err != nil {
		return nil, &rsacrypto.KeyImportError{Reason: err}
	}
	if handle.Class() != rsacrypto.KeyClassPrivate {
		_ = i.store.Release(tag)
		return nil, rsacrypto.ErrNotAPrivateKey
	}

	i.logger.Info("Imported RSA private key with storage tag ", tag)
	return &PrivateKey{
		handle:      handle,
		encoded:     cloneBytes(der),
		keyMaterial: keyMaterial{store: i.store, storageTag: tag},
	}, nil
}

// ImportPublicKeyPEM decodes PEM text and imports the contained public key.
func (i *KeyImporter) ImportPublicKeyPEM(pemText string) (*PublicKey, error) {
	der, err := i.codec.PEMDecode(pemText)
	if err != nil {
		return nil, err
	}
	return i.ImportPublicKey(der)
}

// ImportPrivateKeyPEM decodes PEM text and imports the contained private key.
func (i *KeyImporter) ImportPrivateKeyPEM(pemText string) (*PrivateKey, error) {
	der, err := i.codec.PEMDecode(pemText)
	if err != nil {
		return nil, err
	}
	return i.ImportPrivateKey(der)
}

// ImportPublicKeyBase64 decodes base64 text and imports the contained public key.
func (i *KeyImporter) ImportPublicKeyBase64(text string) (*PublicKey, error) {
	der, err := i.codec.Base64Decode(text)
	if err != nil {
		return nil, err
	}
	return i.ImportPublicKey(der)
}

// ImportPrivateKeyBase64 decodes base64 text and imports the contained private key.
func (i *KeyImporter) ImportPrivateKeyBase64(text string) (*PrivateKey, error) {
	der, err := i.codec.Base64Decode(text)
	if err != nil {
		return nil, err
	}
	return i.ImportPrivateKey(der)
}

func cloneBytes(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
