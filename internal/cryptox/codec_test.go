package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyHex(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return hex.EncodeToString(key)
}

func TestNewCodec_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewCodec("aes-256-cbc", testKeyHex(t))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestNewCodec_BadKey(t *testing.T) {
	_, err := NewCodec(AlgorithmAES256GCM, "not-hex")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewCodec(AlgorithmAES256GCM, "abcd")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestCodec_RoundTrip(t *testing.T) {
	c, err := NewCodec(AlgorithmAES256GCM, testKeyHex(t))
	require.NoError(t, err)

	cases := [][]byte{
		[]byte("hello"),
		[]byte(""),
		[]byte(strings.Repeat("long message ", 1000)),
		{0x00, 0xff, 0x10, 0x80},
	}

	for _, plaintext := range cases {
		bundle, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		got, err := c.Decrypt(bundle)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCodec_FreshIVPerCall(t *testing.T) {
	c, err := NewCodec(AlgorithmAES256GCM, testKeyHex(t))
	require.NoError(t, err)

	a, err := c.Encrypt([]byte("same text"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same text"))
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Content, b.Content)
}

func TestCodec_RejectsTamperedCiphertext(t *testing.T) {
	c, err := NewCodec(AlgorithmAES256GCM, testKeyHex(t))
	require.NoError(t, err)

	bundle, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)

	raw, err := hex.DecodeString(bundle.Content)
	require.NoError(t, err)
	raw[0] ^= 0x01
	bundle.Content = hex.EncodeToString(raw)

	_, err = c.Decrypt(bundle)
	assert.Error(t, err)
}

func TestCodec_RejectsWrongKey(t *testing.T) {
	c1, err := NewCodec(AlgorithmAES256GCM, testKeyHex(t))
	require.NoError(t, err)
	c2, err := NewCodec(AlgorithmAES256GCM, testKeyHex(t))
	require.NoError(t, err)

	bundle, err := c1.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = c2.Decrypt(bundle)
	assert.Error(t, err)
}
