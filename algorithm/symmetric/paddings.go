package symmetric

import (
	"bytes"
	"errors"
)

func (c *CipherContext) addPadding(data []byte) ([]byte, error) {
	switch c.padding {
	case PKCS7:
		return PKCS7Padding(data, c.blockSize), nil
	default:
		return nil, errors.New("unsupported padding mode")
	}
}

func (c *CipherContext) removePadding(data []byte) ([]byte, error) {
	switch c.padding {
	case PKCS7:
		return RemovePKCS7Padding(data, c.blockSize)
	default:
		return nil, errors.New("unsupported padding mode")
	}
}

// PKCS7Padding appends n bytes of value n so the result is a multiple of
// blockSize. Already aligned input grows by a full block.
func PKCS7Padding(data []byte, blockSize int) []byte {
	paddingSize := blockSize - len(data)%blockSize
	padding := bytes.Repeat([]byte{byte(paddingSize)}, paddingSize)
	return append(append([]byte(nil), data...), padding...)
}

// RemovePKCS7Padding validates and strips PKCS7 padding. Every failure is
// reported as the same ErrInvalidPadding, and the trailing bytes are compared
// in full so the error does not reveal which byte differed.
func RemovePKCS7Padding(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	paddingSize := int(data[len(data)-1])
	if paddingSize == 0 || paddingSize > blockSize {
		return nil, ErrInvalidPadding
	}

	var mismatch byte
	for i := len(data) - paddingSize; i < len(data); i++ {
		mismatch |= data[i] ^ byte(paddingSize)
	}
	if mismatch != 0 {
		return nil, ErrInvalidPadding
	}

	return data[:len(data)-paddingSize], nil
}
