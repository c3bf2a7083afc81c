// Package cryptox implements the symmetric codec applied to message bodies
// before they reach the store. Ciphertexts are carried as a pair of hex
// strings so stored rows stay printable and diffable.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// AlgorithmAES256GCM is the only cipher the codec currently speaks.
const AlgorithmAES256GCM = "aes-256-gcm"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")
	ErrInvalidKey           = errors.New("invalid encryption key")
)

// Bundle is one encrypted message body: a random per-message IV and the
// ciphertext, both hex-encoded.
type Bundle struct {
	IV      string `json:"iv"`
	Content string `json:"content"`
}

// Codec encrypts and decrypts message bodies. All cryptographic parameters
// are fixed at construction; a Codec is safe for concurrent use.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec builds a Codec from the configured algorithm name and hex key.
// The key must decode to 32 bytes.
func NewCodec(algorithm, keyHex string) (*Codec, error) {
	if algorithm != AlgorithmAES256GCM {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidKey)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: need 32 bytes, got %d", ErrInvalidKey, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce. Each call produces a
// distinct IV; two encryptions of the same text never share one.
func (c *Codec) Encrypt(plaintext []byte) (Bundle, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return Bundle{}, err
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)

	return Bundle{
		IV:      hex.EncodeToString(nonce),
		Content: hex.EncodeToString(ciphertext),
	}, nil
}

// Decrypt is the inverse of Encrypt. It fails if either field is not valid
// hex or if the ciphertext has been tampered with.
func (c *Codec) Decrypt(b Bundle) ([]byte, error) {
	nonce, err := hex.DecodeString(b.IV)
	if err != nil {
		return nil, fmt.Errorf("decoding iv: %w", err)
	}
	ciphertext, err := hex.DecodeString(b.Content)
	if err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	return c.aead.Open(nil, nonce, ciphertext, nil)
}
