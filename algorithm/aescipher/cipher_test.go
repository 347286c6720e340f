package aescipher

import (
	"errors"
	"strings"
	"testing"

	"AESCipherService/algorithm/symmetric"
)

const testKeyHex = "0123456789abcdef0123456789abcdef"

func TestEncryptDecryptECBHelloWorld(t *testing.T) {
	cipherHex, ivHex, err := Encrypt("HELLO WORLD", testKeyHex, symmetric.ECB, "")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if ivHex != "" {
		t.Errorf("ECB must not return an IV, got %q", ivHex)
	}
	if len(cipherHex) != 32 {
		t.Errorf("11 padded bytes must encrypt to one block, got %d hex chars", len(cipherHex))
	}

	plaintext, err := Decrypt(cipherHex, testKeyHex, symmetric.ECB, "")
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if plaintext != "HELLO WORLD" {
		t.Fatalf("round trip = %q, want %q", plaintext, "HELLO WORLD")
	}
}

func TestEncryptDecryptCFBGeneratedIV(t *testing.T) {
	cipherHex, ivHex, err := Encrypt("stream mode needs no padding", testKeyHex, symmetric.CFB, "")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if len(ivHex) != 32 {
		t.Fatalf("expected 32 hex chars of IV, got %d", len(ivHex))
	}
	if len(cipherHex) != 2*len("stream mode needs no padding") {
		t.Errorf("CFB ciphertext length must equal plaintext length")
	}

	plaintext, err := Decrypt(cipherHex, testKeyHex, symmetric.CFB, ivHex)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if plaintext != "stream mode needs no padding" {
		t.Fatalf("round trip = %q", plaintext)
	}
}

func TestEncryptCFBCallerSuppliedIV(t *testing.T) {
	iv := "000102030405060708090a0b0c0d0e0f"

	first, ivHex, err := Encrypt("repeatable", testKeyHex, symmetric.CFB, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if ivHex != iv {
		t.Errorf("returned IV = %q, want the supplied one", ivHex)
	}

	second, _, err := Encrypt("repeatable", testKeyHex, symmetric.CFB, iv)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if first != second {
		t.Errorf("same key and IV must give identical ciphertexts")
	}

	fresh, _, err := Encrypt("repeatable", testKeyHex, symmetric.CFB, "")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if fresh == first {
		t.Errorf("a fresh random IV must change the ciphertext")
	}
}

func TestDecryptCFBRequiresIV(t *testing.T) {
	cipherHex, _, err := Encrypt("needs an iv", testKeyHex, symmetric.CFB, "")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, err := Decrypt(cipherHex, testKeyHex, symmetric.CFB, ""); !errors.Is(err, ErrInvalidIV) {
		t.Fatalf("expected ErrInvalidIV, got %v", err)
	}
}

func TestDecryptInvalidHex(t *testing.T) {
	if _, err := Decrypt("not-hex-at-all", testKeyHex, symmetric.ECB, ""); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}
}

func TestDecryptWrongKeyFailsPadding(t *testing.T) {
	cipherHex, _, err := Encrypt("padding oracle bait", testKeyHex, symmetric.ECB, "")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// A wrong key corrupts every block; almost always the padding check is
	// the layer that notices, and it must fail with the single opaque error.
	otherKey := "ffffffffffffffffffffffffffffffff"
	plaintext, err := Decrypt(cipherHex, otherKey, symmetric.ECB, "")
	if err == nil {
		if plaintext == "padding oracle bait" {
			t.Fatalf("wrong key produced the original plaintext")
		}
	} else if !errors.Is(err, symmetric.ErrInvalidPadding) {
		t.Fatalf("expected ErrInvalidPadding, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	if mode, err := ParseMode("ECB"); err != nil || mode != symmetric.ECB {
		t.Errorf("ParseMode(ECB) = %v, %v", mode, err)
	}
	if mode, err := ParseMode(" cfb "); err != nil || mode != symmetric.CFB {
		t.Errorf("ParseMode(cfb) = %v, %v", mode, err)
	}
	if _, err := ParseMode("gcm"); !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("expected ErrUnsupportedMode, got %v", err)
	}
}

func TestLongPlaintextRoundTrip(t *testing.T) {
	plaintext := strings.Repeat("многоблочный текст. ", 25)

	for _, mode := range []symmetric.CipherMode{symmetric.ECB, symmetric.CFB} {
		cipherHex, ivHex, err := Encrypt(plaintext, "sixteen byte key", mode, "")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := Decrypt(cipherHex, "sixteen byte key", mode, ivHex)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Fatalf("round trip failed for mode %d", mode)
		}
	}
}
