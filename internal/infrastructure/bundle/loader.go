// Package bundle loads packaged key resources from an fs.FS, typically an
// embed.FS shipped with the application.
package bundle

import (
	"fmt"
	"io/fs"

	"rsa_crypto_service/internal/domain/rsacrypto"
)

// LoadKeyResource reads the named key resource from the bundle. A missing
// entry fails with ErrKeyResourceNotFound; the caller decodes the returned
// bytes as PEM or DER.
func LoadKeyResource(bundle fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(bundle, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", rsacrypto.ErrKeyResourceNotFound, name, err)
	}
	return data, nil
}
