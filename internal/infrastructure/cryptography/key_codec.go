package cryptography

import (
	"encoding/asn1"
	"encoding/base64"
	"encoding/pem"
	"fmt"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/pkg/logger"
)

// oidRSAEncryption is the rsaEncryption algorithm identifier (PKCS#1).
var oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// subjectPublicKeyInfo is the X.509 envelope around bare PKCS#1 public key bytes.
type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// pkcs8PrivateKeyInfo is the PKCS#8 envelope around bare PKCS#1 private key bytes.
type pkcs8PrivateKeyInfo struct {
	Version    int
	Algorithm  algorithmIdentifier
	PrivateKey []byte
}

// keyCodec struct that implements the KeyCodec interface
type keyCodec struct {
	logger logger.Logger
}

// NewKeyCodec creates and returns a new instance of keyCodec
func NewKeyCodec(logger logger.Logger) (rsacrypto.KeyCodec, error) {
	return &keyCodec{
		logger: logger,
	}, nil
}

// StripHeader removes the optional ASN.1 algorithm-identifier envelope in
// front of a bare PKCS#1 key structure. Input already in bare form is
// returned unchanged.
func (c *keyCodec) StripHeader(der []byte) ([]byte, error) {
	outer, err := parseSequence(der)
	if err != nil {
		return nil, err
	}

	// The first element of the sequence discriminates the form: a nested
	// SEQUENCE means an X.509 SubjectPublicKeyInfo envelope, an INTEGER means
	// either bare PKCS#1 or a PKCS#8 envelope.
	var first asn1.RawValue
	innerRest, err := asn1.Unmarshal(outer.Bytes, &first)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rsacrypto.ErrInvalidASN1Structure, err)
	}

	switch first.Tag {
	case asn1.TagSequence:
		var spki subjectPublicKeyInfo
		if _, err := asn1.Unmarshal(der, &spki); err != nil {
			return nil, fmt.Errorf("%w: malformed SubjectPublicKeyInfo: %w", rsacrypto.ErrInvalidASN1Structure, err)
		}
		if spki.PublicKey.BitLength%8 != 0 {
			return nil, fmt.Errorf("%w: public key bit string is not byte aligned", rsacrypto.ErrInvalidASN1Structure)
		}
		return spki.PublicKey.Bytes, nil

	case asn1.TagInteger:
		if len(innerRest) == 0 {
			return nil, fmt.Errorf("%w: truncated key sequence", rsacrypto.ErrInvalidASN1Structure)
		}
		var second asn1.RawValue
		if _, err := asn1.Unmarshal(innerRest, &second); err != nil {
			return nil, fmt.Errorf("%w: %w", rsacrypto.ErrInvalidASN1Structure, err)
		}
		if second.Tag == asn1.TagSequence {
			var p8 pkcs8PrivateKeyInfo
			if _, err := asn1.Unmarshal(der, &p8); err != nil {
				return nil, fmt.Errorf("%w: malformed PKCS#8 structure: %w", rsacrypto.ErrInvalidASN1Structure, err)
			}
			return p8.PrivateKey, nil
		}
		// Bare PKCS#1: INTEGER followed by more INTEGERs.
		return der, nil

	default:
		return nil, fmt.Errorf("%w: unexpected element with tag %d", rsacrypto.ErrInvalidASN1Structure, first.Tag)
	}
}

// WrapPublicHeader wraps bare PKCS#1 public key bytes in an X.509
// SubjectPublicKeyInfo envelope with the rsaEncryption identifier.
func (c *keyCodec) WrapPublicHeader(bare []byte) ([]byte, error) {
	if _, err := parseSequence(bare); err != nil {
		return nil, err
	}

	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{
			Algorithm:  oidRSAEncryption,
			Parameters: asn1.NullRawValue,
		},
		PublicKey: asn1.BitString{Bytes: bare, BitLength: len(bare) * 8},
	}
	der, err := asn1.Marshal(spki)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap public key header: %w", err)
	}
	return der, nil
}

// WrapPrivateHeader wraps bare PKCS#1 private key bytes in a PKCS#8
// PrivateKeyInfo envelope with the rsaEncryption identifier.
func (c *keyCodec) WrapPrivateHeader(bare []byte) ([]byte, error) {
	if _, err := parseSequence(bare); err != nil {
		return nil, err
	}

	p8 := pkcs8PrivateKeyInfo{
		Version: 0,
		Algorithm: algorithmIdentifier{
			Algorithm:  oidRSAEncryption,
			Parameters: asn1.NullRawValue,
		},
		PrivateKey: bare,
	}
	der, err := asn1.Marshal(p8)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap private key header: %w", err)
	}
	return der, nil
}

// PEMEncode wraps DER bytes in a PEM block with the given label, producing
// 64-character base64 body lines between BEGIN and END markers.
func (c *keyCodec) PEMEncode(der []byte, label string) string {
	block := &pem.Block{
		Type:  label,
		Bytes: der,
	}
	return string(pem.EncodeToMemory(block))
}

// PEMDecode extracts the DER bytes of the first PEM block in text.
func (c *keyCodec) PEMDecode(text string) ([]byte, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", rsacrypto.ErrInvalidPEMFormat)
	}
	return block.Bytes, nil
}

// Base64Decode decodes standard-alphabet base64 text.
func (c *keyCodec) Base64Decode(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rsacrypto.ErrInvalidBase64, err)
	}
	return data, nil
}

// DERDecode validates that data is a single well-formed ASN.1 element and
// returns it unchanged.
func (c *keyCodec) DERDecode(data []byte) ([]byte, error) {
	if _, err := parseSequence(data); err != nil {
		return nil, err
	}
	return data, nil
}

// parseSequence checks that der is exactly one ASN.1 SEQUENCE with no
// trailing bytes and returns the parsed element.
func parseSequence(der []byte) (*asn1.RawValue, error) {
	var raw asn1.RawValue
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rsacrypto.ErrInvalidASN1Structure, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing bytes after key structure", rsacrypto.ErrInvalidASN1Structure)
	}
	if raw.Class != asn1.ClassUniversal || raw.Tag != asn1.TagSequence || !raw.IsCompound {
		return nil, fmt.Errorf("%w: top-level element is not a SEQUENCE", rsacrypto.ErrInvalidASN1Structure)
	}
	return &raw, nil
}
