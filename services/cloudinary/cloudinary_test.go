package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignParamsCanonicalOrder(t *testing.T) {
	// Keys must be serialized sorted regardless of map insertion.
	got := SignParams(map[string]string{
		"timestamp": "1700000000",
		"folder":    "avatars",
	}, "secret123")

	sum := sha1.Sum([]byte("folder=avatars&timestamp=1700000000secret123"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
}

func TestSignParamsSecretChangesSignature(t *testing.T) {
	params := map[string]string{"public_id": "avatars/u1", "timestamp": "42"}

	a := SignParams(params, "secret-a")
	b := SignParams(params, "secret-b")

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 40)
	assert.Len(t, b, 40)
}
