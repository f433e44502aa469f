// Package rsacrypto defines the core contracts and value types for RSA key
// management and message cryptography: key handles and their secure-storage
// collaborator, message wrappers, digest and padding selection, and the
// error taxonomy shared by all implementations.

package rsacrypto
