package validators

import (
	"github.com/go-playground/validator/v10"
)

// rsaModulusBits lists the RSA modulus sizes accepted on key import.
var rsaModulusBits = []uint64{512, 1024, 2048, 3072, 4096}

// RSAKeySizeValidation validates the modulus bit size of an imported RSA key.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Uint()
	for _, bits := range rsaModulusBits {
		if keySize == bits {
			return true
		}
	}
	return false
}
