package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name     string
		refID    string
		endpoint string
		want     string
	}{
		{
			name:     "validate endpoint reference hash",
			refID:    "2025000004",
			endpoint: EndpointValidateOTP,
			want:     "BDEA245336FEE65EEE58E42CAEC5A9E86AA45C00FFA2305E5D655686CE90DBFD",
		},
		{
			name:     "fetch endpoint reference hash",
			refID:    "2025000004",
			endpoint: EndpointFetchAllData,
			want:     "E2AD0EE37B0578D6384EC25761F16B82B7DFE3829BCFB988046A99D01E484DDB",
		},
		{
			name:     "generate endpoint reference hash",
			refID:    "2025000004",
			endpoint: EndpointGenerateOTP,
			want:     "01B5E410B158F9880D71C900D11E57498F7164B841294F56D2798DECE209C041",
		},
		{
			name:     "resend endpoint reference hash",
			refID:    "2025000004",
			endpoint: EndpointResendOTP,
			want:     "0A53D5150AA6C239CB2D49038158368FE35DE9E85A0F27FB44A2E83A258A3BE8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sign(tt.refID, tt.endpoint))
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	first := Sign("REF-1", EndpointFetchAllData)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sign("REF-1", EndpointFetchAllData))
	}
	assert.Equal(t, "784043A348247F2AD37DBE9D166E8B8CE007272BDACAE14D6601F9643AA2258D", first)
}

func TestSignDistinguishesInputs(t *testing.T) {
	base := Sign("2025000004", EndpointValidateOTP)

	assert.NotEqual(t, base, Sign("2025000005", EndpointValidateOTP))
	assert.NotEqual(t, base, Sign("2025000004", EndpointGenerateOTP))
	// Plain concatenation: identical concatenations produce identical codes.
	assert.Equal(t, Sign("ab", "c"), Sign("a", "bc"))
}

func TestSignOutputShape(t *testing.T) {
	code := Sign("", "")
	assert.Len(t, code, 64)
	for _, r := range code {
		ok := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')
		assert.True(t, ok, "unexpected rune %q in apiCode", r)
	}
}
