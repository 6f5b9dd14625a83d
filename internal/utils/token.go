package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// Share tokens are AES-CFB over the gallery id: opaque, URL-safe, and
// reversible on the server without an extra table.

func EncryptShareToken(id uuid.UUID, key string) (string, error) {
	plaintext := []byte(id.String())

	k := []byte(key)
	if len(k) != 16 && len(k) != 24 && len(k) != 32 {
		return "", fmt.Errorf("invalid key length: %d (must be 16/24/32)", len(k))
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(plaintext))

	iv := ciphertext[:aes.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to read random iv: %w", err)
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], plaintext)

	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func DecryptShareToken(enc string, key string) (uuid.UUID, error) {
	if enc == "" {
		return uuid.Nil, fmt.Errorf("empty share token")
	}

	ciphertext, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode base64 failed: %w", err)
	}

	if len(ciphertext) < aes.BlockSize {
		return uuid.Nil, fmt.Errorf("ciphertext too short: len=%d", len(ciphertext))
	}

	k := []byte(key)
	if len(k) != 16 && len(k) != 24 && len(k) != 32 {
		return uuid.Nil, fmt.Errorf("invalid key length: %d (must be 16/24/32)", len(k))
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return uuid.Nil, err
	}

	iv := ciphertext[:aes.BlockSize]
	body := ciphertext[aes.BlockSize:]

	plaintext := make([]byte, len(body))
	stream := cipher.NewCFBDecrypter(block, iv)
	stream.XORKeyStream(plaintext, body)

	id, err := uuid.Parse(string(plaintext))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id failed: %w", err)
	}

	return id, nil
}
