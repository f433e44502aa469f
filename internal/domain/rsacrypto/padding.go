package rsacrypto

// Padding selects the padding scheme applied by the per-block encryption
// primitive.
type Padding string

// Supported padding schemes
const (
	// PaddingPKCS1v15 applies PKCS#1 v1.5 padding with an 11-byte per-block overhead.
	PaddingPKCS1v15 Padding = "pkcs1v15"

	// PaddingNone applies no padding; each block carries the full modulus width.
	PaddingNone Padding = "none"
)

// Overhead returns the number of bytes the scheme consumes per block.
func (p Padding) Overhead() int {
	if p == PaddingPKCS1v15 {
		return pkcs1v15Overhead
	}
	return 0
}

// pkcs1v15Overhead is the minimum PKCS#1 v1.5 padding size: two format bytes,
// at least eight padding bytes and a separator.
const pkcs1v15Overhead = 11
