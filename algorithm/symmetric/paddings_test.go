package symmetric

import (
	"bytes"
	"errors"
	"testing"
)

func TestPKCS7RoundTripAllLengths(t *testing.T) {
	for n := 0; n < 32; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i + 1)
		}

		padded := PKCS7Padding(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("padded length %d is not block aligned", len(padded))
		}
		if len(padded) == len(data) {
			t.Fatalf("padding must always add at least one byte")
		}

		unpadded, err := RemovePKCS7Padding(padded, 16)
		if err != nil {
			t.Fatalf("unpad failed at length %d: %v", n, err)
		}
		if !bytes.Equal(data, unpadded) {
			t.Fatalf("padding round-trip failed at length %d", n)
		}
	}
}

func TestPKCS7FullBlockPadding(t *testing.T) {
	padded := PKCS7Padding(make([]byte, 16), 16)
	if len(padded) != 32 {
		t.Fatalf("aligned input must grow by a full block, got length %d", len(padded))
	}
	for _, b := range padded[16:] {
		if b != 16 {
			t.Fatalf("expected 16 bytes of value 16, found %#02x", b)
		}
	}
}

func TestRemovePKCS7PaddingRejectsMalformed(t *testing.T) {
	cases := map[string][]byte{
		"zero padding byte":  append(bytes.Repeat([]byte{0x01}, 15), 0x00),
		"padding too large":  append(bytes.Repeat([]byte{0x01}, 15), 0x11),
		"mismatched content": append(bytes.Repeat([]byte{0x03}, 14), 0x02, 0x03),
		"empty input":        {},
		"misaligned input":   bytes.Repeat([]byte{0x02}, 10),
	}

	for name, data := range cases {
		if _, err := RemovePKCS7Padding(data, 16); !errors.Is(err, ErrInvalidPadding) {
			t.Errorf("%s: expected ErrInvalidPadding, got %v", name, err)
		}
	}
}
