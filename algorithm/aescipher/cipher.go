// Package aescipher is the string-level AES-128 interface: it normalizes
// key/IV input, drives the symmetric layer in ECB or CFB mode and hex-encodes
// the result.
package aescipher

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"AESCipherService/algorithm/aes"
	"AESCipherService/algorithm/symmetric"
)

var (
	ErrInvalidKey      = errors.New("AES-128 key must be exactly 16 bytes (32 hex or 16 chars)")
	ErrInvalidIV       = errors.New("IV must be exactly 16 bytes (32 hex or 16 chars)")
	ErrInvalidHex      = errors.New("malformed hex input")
	ErrUnsupportedMode = errors.New("unsupported cipher mode, expected ecb or cfb")
)

// ParseMode maps the wire-level mode tag onto the symmetric enum, so string
// comparisons stay out of the cipher core.
func ParseMode(mode string) (symmetric.CipherMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "ecb":
		return symmetric.ECB, nil
	case "cfb":
		return symmetric.CFB, nil
	default:
		return 0, ErrUnsupportedMode
	}
}

// Encrypt encrypts plaintext under the normalized key and returns the
// ciphertext as hex. For CFB the IV is normalized when supplied and freshly
// generated otherwise, and its hex form is returned alongside; for ECB the
// second return value is empty.
func Encrypt(plaintext, key string, mode symmetric.CipherMode, iv string) (string, string, error) {
	keyBytes, err := NormalizeKey(key)
	if err != nil {
		return "", "", err
	}

	cipher, err := aes.NewAES(keyBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	var ivBytes []byte
	if mode == symmetric.CFB {
		if iv == "" {
			ivBytes, err = GenerateIV()
		} else {
			ivBytes, err = NormalizeIV(iv, aes.BlockSize)
		}
		if err != nil {
			return "", "", err
		}
	}

	cipherContext, err := symmetric.NewCipherContext(cipher, mode, symmetric.PKCS7, ivBytes)
	if err != nil {
		return "", "", err
	}

	encrypted, err := cipherContext.Encrypt([]byte(plaintext))
	if err != nil {
		return "", "", err
	}

	ivHex := ""
	if mode == symmetric.CFB {
		ivHex = hex.EncodeToString(ivBytes)
	}
	return hex.EncodeToString(encrypted), ivHex, nil
}

// Decrypt reverses Encrypt. For CFB the caller must supply the IV that was
// used at encryption time.
func Decrypt(cipherHex, key string, mode symmetric.CipherMode, iv string) (string, error) {
	keyBytes, err := NormalizeKey(key)
	if err != nil {
		return "", err
	}

	data, err := HexDecode(cipherHex)
	if err != nil {
		return "", err
	}

	cipher, err := aes.NewAES(keyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	var ivBytes []byte
	if mode == symmetric.CFB {
		if iv == "" {
			return "", fmt.Errorf("%w: IV is required for CFB decryption", ErrInvalidIV)
		}
		ivBytes, err = NormalizeIV(iv, aes.BlockSize)
		if err != nil {
			return "", err
		}
	}

	cipherContext, err := symmetric.NewCipherContext(cipher, mode, symmetric.PKCS7, ivBytes)
	if err != nil {
		return "", err
	}

	decrypted, err := cipherContext.Decrypt(data)
	if err != nil {
		return "", err
	}

	return string(decrypted), nil
}
