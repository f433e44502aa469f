//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySpec struct {
	KeySize uint `validate:"rsa_keysize"`
}

func newKeySizeValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("rsa_keysize", RSAKeySizeValidation))
	return validate
}

func TestRSAKeySizeValidation(t *testing.T) {
	validate := newKeySizeValidator(t)

	tests := []struct {
		name    string
		keySize uint
		valid   bool
	}{
		{"512 bits", 512, true},
		{"1024 bits", 1024, true},
		{"2048 bits", 2048, true},
		{"3072 bits", 3072, true},
		{"4096 bits", 4096, true},
		{"zero", 0, false},
		{"non-standard size", 2000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&keySpec{KeySize: tt.keySize})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
