// Package cryptography implements the RSA crypto contracts: the key codec
// for PEM/DER/ASN.1 envelope handling, software key handles over crypto/rsa,
// the key importer bound to a secure-storage collaborator, the chunked
// block transform, and the encryption and signature services built on it.
package cryptography
