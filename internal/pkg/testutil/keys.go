package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

// GenerateRSAKey generates an RSA private key for tests.
func GenerateRSAKey(t *testing.T, bits int) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)
	return key
}

// RSAKeyPairPEM returns the PKCS#1 PEM forms of a key pair, the fixture
// format the import pipeline consumes.
func RSAKeyPairPEM(t *testing.T, key *rsa.PrivateKey) (publicPEM, privatePEM string) {
	t.Helper()

	pubBlock := &pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey),
	}
	privBlock := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}
	return string(pem.EncodeToMemory(pubBlock)), string(pem.EncodeToMemory(privBlock))
}

// RSAKeyPairWrappedPEM returns the header-wrapped PEM forms of a key pair:
// X.509 SubjectPublicKeyInfo for the public half and PKCS#8 for the private
// half.
func RSAKeyPairWrappedPEM(t *testing.T, key *rsa.PrivateKey) (publicPEM, privatePEM string) {
	t.Helper()

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	pubBlock := &pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}
	privBlock := &pem.Block{Type: "PRIVATE KEY", Bytes: privDER}
	return string(pem.EncodeToMemory(pubBlock)), string(pem.EncodeToMemory(privBlock))
}
