package symmetric

import (
	"bytes"
	"errors"
	"testing"

	"AESCipherService/algorithm/aes"
)

var (
	testKey = []byte("0123456789ABCDEF")
	testIV  = []byte("FEDCBA9876543210")
)

func getTestCipher(t *testing.T) CipherScheme {
	t.Helper()
	cipher, err := aes.NewAES(testKey)
	if err != nil {
		t.Fatalf("NewAES failed: %v", err)
	}
	return cipher
}

func TestECBRoundTrip(t *testing.T) {
	ctx, err := NewCipherContext(getTestCipher(t), ECB, PKCS7, nil)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}

	plaintext := []byte("Hello, World!!!!")

	encrypted, err := ctx.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}

	decrypted, err := ctx.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("ECB decryption failed: %v", err)
	}

	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("ECB round-trip failed: expected %s, got %s", plaintext, decrypted)
	}
}

func TestECBIdenticalBlocksIdenticalCiphertext(t *testing.T) {
	ctx, err := NewCipherContext(getTestCipher(t), ECB, PKCS7, nil)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}

	block := bytes.Repeat([]byte{0xab}, 16)
	data := append(append([]byte{}, block...), block...)

	encrypted, err := ctx.EncryptECB(data)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}

	if !bytes.Equal(encrypted[:16], encrypted[16:32]) {
		t.Fatalf("identical plaintext blocks must produce identical ciphertext blocks in ECB")
	}
}

func TestECBDeterminism(t *testing.T) {
	ctx, err := NewCipherContext(getTestCipher(t), ECB, PKCS7, nil)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}

	plaintext := []byte("deterministic input")

	first, err := ctx.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}
	second, err := ctx.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("ECB must be deterministic under a fixed key")
	}
}

func TestECBMisalignedInput(t *testing.T) {
	ctx, err := NewCipherContext(getTestCipher(t), ECB, PKCS7, nil)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}

	if _, err := ctx.EncryptECB(make([]byte, 15)); !errors.Is(err, ErrMisalignedLength) {
		t.Fatalf("expected ErrMisalignedLength, got %v", err)
	}
	if _, err := ctx.Decrypt(make([]byte, 21)); !errors.Is(err, ErrMisalignedLength) {
		t.Fatalf("expected ErrMisalignedLength, got %v", err)
	}
}

func TestCFBRoundTripVariousLengths(t *testing.T) {
	for _, n := range []int{0, 1, 5, 15, 16, 17, 23, 32, 37, 100} {
		ctx, err := NewCipherContext(getTestCipher(t), CFB, PKCS7, testIV)
		if err != nil {
			t.Fatalf("NewCipherContext failed: %v", err)
		}

		plaintext := make([]byte, n)
		for i := range plaintext {
			plaintext[i] = byte(i * 7)
		}

		encrypted, err := ctx.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("CFB encryption failed at length %d: %v", n, err)
		}
		if len(encrypted) != n {
			t.Fatalf("CFB output length = %d, want %d", len(encrypted), n)
		}

		decrypted, err := ctx.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("CFB decryption failed at length %d: %v", n, err)
		}
		if !bytes.Equal(plaintext, decrypted) {
			t.Fatalf("CFB round-trip failed at length %d", n)
		}
	}
}

func TestCFBIVBehavior(t *testing.T) {
	plaintext := []byte("the same plaintext every time")

	ctxA, err := NewCipherContext(getTestCipher(t), CFB, PKCS7, testIV)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}
	ctxB, err := NewCipherContext(getTestCipher(t), CFB, PKCS7, testIV)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}
	otherIV := bytes.Repeat([]byte{0x42}, 16)
	ctxC, err := NewCipherContext(getTestCipher(t), CFB, PKCS7, otherIV)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}

	first, err := ctxA.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("CFB encryption failed: %v", err)
	}
	second, err := ctxB.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("CFB encryption failed: %v", err)
	}
	third, err := ctxC.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("CFB encryption failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("same key and IV must give identical ciphertexts")
	}
	if bytes.Equal(first, third) {
		t.Errorf("different IVs must give different ciphertexts")
	}
}

func TestCFBRequiresIV(t *testing.T) {
	if _, err := NewCipherContext(getTestCipher(t), CFB, PKCS7, nil); err == nil {
		t.Fatalf("expected error for CFB without IV")
	}
	if _, err := NewCipherContext(getTestCipher(t), CFB, PKCS7, make([]byte, 8)); err == nil {
		t.Fatalf("expected error for short IV")
	}
}

func TestSplitBlocks(t *testing.T) {
	blocks, err := SplitBlocks(make([]byte, 48), 16)
	if err != nil {
		t.Fatalf("SplitBlocks failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	if _, err := SplitBlocks(make([]byte, 40), 16); !errors.Is(err, ErrMisalignedLength) {
		t.Fatalf("expected ErrMisalignedLength, got %v", err)
	}
}

func TestEncryptAsync(t *testing.T) {
	ctx, err := NewCipherContext(getTestCipher(t), ECB, PKCS7, nil)
	if err != nil {
		t.Fatalf("NewCipherContext failed: %v", err)
	}

	plaintext := []byte("async round trip payload")

	resultChan, errChan := ctx.EncryptAsync(plaintext)
	encrypted := <-resultChan
	if err := <-errChan; err != nil {
		t.Fatalf("async encryption failed: %v", err)
	}

	decrypted, err := ctx.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("decryption failed: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("async round-trip failed")
	}
}
