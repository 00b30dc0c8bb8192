package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values computed from the documented double-MD5 construction with
// merchantId=M1, orderId=O1, amount=100.00, currency=LKR, secret=secret.
const (
	pinnedRequestHash = "B7244B65218820BF47AD131444C56E86"
	pinnedNotifyHash  = "02D081E9E304A37053056B741FB52E83" // status_code=2
)

func TestGeneratePayHereHash(t *testing.T) {
	hash := GeneratePayHereHash("M1", "O1", "100.00", "LKR", "secret")
	assert.Equal(t, pinnedRequestHash, hash)
}

func TestGeneratePayHereHashFieldOrderMatters(t *testing.T) {
	// swapping merchant and order must change the digest
	swapped := GeneratePayHereHash("O1", "M1", "100.00", "LKR", "secret")
	assert.NotEqual(t, pinnedRequestHash, swapped)
}

func TestVerifyPayHereSignature(t *testing.T) {
	t.Run("valid signature", func(t *testing.T) {
		ok := VerifyPayHereSignature("M1", "O1", "100.00", "LKR", "2", "secret", pinnedNotifyHash)
		assert.True(t, ok)
	})

	t.Run("lowercase signature still verifies", func(t *testing.T) {
		ok := VerifyPayHereSignature("M1", "O1", "100.00", "LKR", "2", "secret", "02d081e9e304a37053056b741fb52e83")
		assert.True(t, ok)
	})

	t.Run("single flipped character is rejected", func(t *testing.T) {
		tampered := "12D081E9E304A37053056B741FB52E83"
		ok := VerifyPayHereSignature("M1", "O1", "100.00", "LKR", "2", "secret", tampered)
		assert.False(t, ok)
	})

	t.Run("different status code is rejected", func(t *testing.T) {
		ok := VerifyPayHereSignature("M1", "O1", "100.00", "LKR", "0", "secret", pinnedNotifyHash)
		assert.False(t, ok)
	})

	t.Run("different amount is rejected", func(t *testing.T) {
		ok := VerifyPayHereSignature("M1", "O1", "100.01", "LKR", "2", "secret", pinnedNotifyHash)
		assert.False(t, ok)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2000.00", FormatAmount(2000))
	assert.Equal(t, "100.00", FormatAmount(100))
	assert.Equal(t, "0.00", FormatAmount(0))
}
