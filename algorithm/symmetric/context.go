package symmetric

import (
	"fmt"
)

// CipherContext composes a block cipher with a chaining mode and a padding
// scheme. ECB input is padded before encryption and unpadded after
// decryption; CFB consumes the keystream byte-wise and needs no padding.
type CipherContext struct {
	cipher    CipherScheme
	mode      CipherMode
	padding   PaddingMode
	iv        []byte
	blockSize int
}

func NewCipherContext(cipher CipherScheme, mode CipherMode, padding PaddingMode, iv []byte) (*CipherContext, error) {
	if cipher == nil {
		return nil, fmt.Errorf("cipher is not initialized")
	}

	cryptoContext := &CipherContext{
		cipher:    cipher,
		mode:      mode,
		padding:   padding,
		iv:        append([]byte(nil), iv...),
		blockSize: cipher.BlockSize(),
	}

	if mode == CFB && len(cryptoContext.iv) != cryptoContext.blockSize {
		return nil, fmt.Errorf("iv length must be equal to block size %d", cryptoContext.blockSize)
	}

	return cryptoContext, nil
}

func (c *CipherContext) SetKey(key []byte) error {
	return c.cipher.SetKey(key)
}

func (c *CipherContext) Encrypt(data []byte) ([]byte, error) {
	var (
		encryptedData []byte
		err           error
	)

	switch c.mode {
	case ECB:
		dataWithPadding, padErr := c.addPadding(data)
		if padErr != nil {
			return nil, fmt.Errorf("failed to add padding: %w", padErr)
		}
		encryptedData, err = c.EncryptECB(dataWithPadding)
	case CFB:
		encryptedData, err = c.EncryptCFB(data)
	default:
		err = ErrUnsupportedMode
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return encryptedData, nil
}

func (c *CipherContext) Decrypt(data []byte) ([]byte, error) {
	var (
		decryptedData []byte
		err           error
	)

	switch c.mode {
	case ECB:
		decryptedData, err = c.DecryptECB(data)
		if err == nil {
			decryptedData, err = c.removePadding(decryptedData)
		}
	case CFB:
		decryptedData, err = c.DecryptCFB(data)
	default:
		err = ErrUnsupportedMode
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	return decryptedData, nil
}

func (c *CipherContext) EncryptAsync(data []byte) (<-chan []byte, <-chan error) {
	resultChan := make(chan []byte, 1)
	errorChan := make(chan error, 1)

	go func() {
		defer close(resultChan)
		defer close(errorChan)

		encrypted, err := c.Encrypt(data)
		if err != nil {
			errorChan <- err
			return
		}
		resultChan <- encrypted
	}()

	return resultChan, errorChan
}

func (c *CipherContext) DecryptAsync(data []byte) (<-chan []byte, <-chan error) {
	resultChan := make(chan []byte, 1)
	errorChan := make(chan error, 1)

	go func() {
		defer close(resultChan)
		defer close(errorChan)

		decrypted, err := c.Decrypt(data)
		if err != nil {
			errorChan <- err
			return
		}
		resultChan <- decrypted
	}()

	return resultChan, errorChan
}
