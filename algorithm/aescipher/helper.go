package aescipher

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"AESCipherService/algorithm/aes"
)

// NormalizeKey turns a user key string into 16 key bytes. A 32-character
// string is first tried as hex; when hex parsing fails, or for any other
// length, the raw UTF-8 bytes of the original string are used.
func NormalizeKey(keyString string) ([]byte, error) {
	keyBytes := normalize(keyString, aes.KeySize)
	if len(keyBytes) != aes.KeySize {
		return nil, ErrInvalidKey
	}
	return keyBytes, nil
}

// NormalizeIV applies the key normalization rule to an IV of the given size.
func NormalizeIV(ivString string, size int) ([]byte, error) {
	ivBytes := normalize(ivString, size)
	if len(ivBytes) != size {
		return nil, ErrInvalidIV
	}
	return ivBytes, nil
}

func normalize(s string, size int) []byte {
	stripped := strings.TrimSpace(s)
	if len(stripped) == 2*size {
		if decoded, err := hex.DecodeString(stripped); err == nil {
			return decoded
		}
	}
	return []byte(s)
}

// HexDecode decodes a hex string, tolerating surrounding whitespace.
func HexDecode(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHex, err)
	}
	return data, nil
}

func HexEncode(data []byte) string {
	return hex.EncodeToString(data)
}

// GenerateIV returns a fresh unpredictable 16-byte IV from crypto/rand.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// GenerateKey returns a fresh random 16-byte AES-128 key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, aes.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}
