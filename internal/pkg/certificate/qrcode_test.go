package certificate

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeDataURI(t *testing.T) {
	uri, err := QRCodeDataURI("http://localhost:8080/validate/CERT-0123456789ABCDEF0123456789ABCDEF")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestQRCodeDataURIsDifferPerURL(t *testing.T) {
	a, err := QRCodeDataURI("http://localhost:8080/validate/CERT-A")
	require.NoError(t, err)
	b, err := QRCodeDataURI("http://localhost:8080/validate/CERT-B")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
