package cryptography

import (
	"fmt"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/pkg/logger"
)

// signatureService struct that implements the SignatureService interface
type signatureService struct {
	logger logger.Logger
}

// NewSignatureService creates and returns a new instance of signatureService
func NewSignatureService(logger logger.Logger) (rsacrypto.SignatureService, error) {
	return &signatureService{
		logger: logger,
	}, nil
}

// Sign digests the message and signs the digest with a private key handle.
// The digest must fit inside one block alongside the PKCS#1 v1.5 signing
// overhead; a digest that large is rejected rather than truncated.
func (s *signatureService) Sign(message *rsacrypto.ClearMessage, key rsacrypto.KeyHandle, digestType rsacrypto.DigestType) (*rsacrypto.Signature, error) {
	if key == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	if key.Class() != rsacrypto.KeyClassPrivate {
		return nil, rsacrypto.ErrNotAPrivateKey
	}

	digest := digestType.Hash(message.Bytes())

	maxAllowed := key.BlockSize() - pkcs1v15SigningOverhead
	if len(digest) > maxAllowed {
		return nil, &rsacrypto.DigestTooLargeError{DigestSize: len(digest), MaxAllowed: maxAllowed}
	}

	raw, err := key.RawSign(digest, digestType)
	if err != nil {
		return nil, &rsacrypto.SignatureCreationError{Status: err}
	}

	s.logger.Info("RSA signing succeeded")
	return rsacrypto.NewSignature(raw), nil
}

// Verify digests the message identically to Sign and checks the signature
// with a public key handle. A definite mismatch returns (false, nil); only
// operational failures return an error.
func (s *signatureService) Verify(message *rsacrypto.ClearMessage, key rsacrypto.KeyHandle, signature *rsacrypto.Signature, digestType rsacrypto.DigestType) (bool, error) {
	if key == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}
	if key.Class() != rsacrypto.KeyClassPublic {
		return false, rsacrypto.ErrNotAPublicKey
	}

	digest := digestType.Hash(message.Bytes())

	result, err := key.RawVerify(digest, signature.Bytes(), digestType)
	if err != nil {
		return false, &rsacrypto.SignatureVerificationError{Status: err}
	}
	if result != rsacrypto.VerifyMatch {
		return false, nil
	}

	s.logger.Info("RSA signature verified successfully")
	return true, nil
}

// pkcs1v15SigningOverhead is the minimum space PKCS#1 v1.5 signing reserves
// in a block beyond the digest itself.
const pkcs1v15SigningOverhead = 11
