//go:build unit
// +build unit

package keystore

import (
	"crypto/x509"
	"testing"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *InMemoryKeyStore {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	store, err := NewInMemoryKeyStore(log)
	require.NoError(t, err)
	return store
}

func TestInMemoryKeyStore_Import(t *testing.T) {
	store := setupStore(t)
	key := testutil.GenerateRSAKey(t, 2048)

	t.Run("imports a public key", func(t *testing.T) {
		handle, err := store.Import(x509.MarshalPKCS1PublicKey(&key.PublicKey), rsacrypto.KeyClassPublic, "tag-pub")
		require.NoError(t, err)
		assert.Equal(t, rsacrypto.KeyClassPublic, handle.Class())
		assert.Equal(t, 256, handle.BlockSize())
	})

	t.Run("imports a private key", func(t *testing.T) {
		handle, err := store.Import(x509.MarshalPKCS1PrivateKey(key), rsacrypto.KeyClassPrivate, "tag-priv")
		require.NoError(t, err)
		assert.Equal(t, rsacrypto.KeyClassPrivate, handle.Class())
	})

	t.Run("rejects corrupt bytes", func(t *testing.T) {
		_, err := store.Import([]byte("corrupt"), rsacrypto.KeyClassPublic, "tag-corrupt")
		assert.Error(t, err)
	})

	t.Run("rejects private bytes imported as public", func(t *testing.T) {
		_, err := store.Import(x509.MarshalPKCS1PrivateKey(key), rsacrypto.KeyClassPublic, "tag-mismatch")
		assert.Error(t, err)
	})

	t.Run("rejects tag collisions", func(t *testing.T) {
		bare := x509.MarshalPKCS1PublicKey(&key.PublicKey)
		_, err := store.Import(bare, rsacrypto.KeyClassPublic, "tag-dup")
		require.NoError(t, err)

		_, err = store.Import(bare, rsacrypto.KeyClassPublic, "tag-dup")
		assert.ErrorContains(t, err, "already in use")
	})
}

func TestInMemoryKeyStore_Release(t *testing.T) {
	store := setupStore(t)
	key := testutil.GenerateRSAKey(t, 2048)
	bare := x509.MarshalPKCS1PublicKey(&key.PublicKey)

	_, err := store.Import(bare, rsacrypto.KeyClassPublic, "tag-1")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Release("tag-1"))
	assert.Zero(t, store.Len())

	t.Run("double release is an error", func(t *testing.T) {
		assert.Error(t, store.Release("tag-1"))
	})

	t.Run("unknown tag is an error", func(t *testing.T) {
		assert.Error(t, store.Release("never-imported"))
	})
}

func TestInMemoryKeyStore_ConcurrentImports(t *testing.T) {
	store := setupStore(t)
	key := testutil.GenerateRSAKey(t, 2048)
	bare := x509.MarshalPKCS1PublicKey(&key.PublicKey)

	const workers = 16
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			_, err := store.Import(bare, rsacrypto.KeyClassPublic, string(rune('a'+i)))
			done <- err
		}(i)
	}
	for i := 0; i < workers; i++ {
		assert.NoError(t, <-done)
	}
	assert.Equal(t, workers, store.Len())
}
