package upi

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURI(t *testing.T) {
	uri := BuildURI("shop@ybl", "MyStorX", 229, "65f1c0ffee0123456789abcd")
	assert.Equal(t,
		"upi://pay?pa=shop@ybl&pn=MyStorX&am=229.00&cu=INR&tn=Order65f1c0ffee0123456789abcd",
		uri)
}

func TestBuildURIEscapesPayeeName(t *testing.T) {
	uri := BuildURI("shop@ybl", "My StorX", 10.5, "abc123")
	assert.Contains(t, uri, "pn=My+StorX")
	assert.Contains(t, uri, "am=10.50")
}

func TestQRDataURL(t *testing.T) {
	dataURL, err := QRDataURL("upi://pay?pa=shop@ybl&am=10.00")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	assert.NoError(t, err)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}
