package symmetric

import (
	"fmt"
	"sync"
)

// SplitBlocks cuts data into consecutive blockSize slices. The slices alias
// the input buffer.
func SplitBlocks(data []byte, blockSize int) ([][]byte, error) {
	if len(data)%blockSize != 0 {
		return nil, ErrMisalignedLength
	}

	blocks := make([][]byte, 0, len(data)/blockSize)
	for pos := 0; pos < len(data); pos += blockSize {
		blocks = append(blocks, data[pos:pos+blockSize])
	}
	return blocks, nil
}

// EncryptECB encrypts every block independently. Blocks are processed in
// parallel and reassembled in index order; identical plaintext blocks yield
// identical ciphertext blocks, which is the documented ECB behavior.
func (c *CipherContext) EncryptECB(data []byte) ([]byte, error) {
	blocks, err := SplitBlocks(data, c.blockSize)
	if err != nil {
		return nil, err
	}

	encrypted := make([]byte, len(data))

	wg := &sync.WaitGroup{}
	errChan := make(chan error, len(blocks))

	for i, block := range blocks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			encryptedBlock, err := c.cipher.Encrypt(block)
			if err != nil {
				errChan <- fmt.Errorf("encryption failed at block %d: %w", i, err)
				return
			}

			copy(encrypted[i*c.blockSize:], encryptedBlock)
		}()
	}

	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		return nil, err
	}

	return encrypted, nil
}

func (c *CipherContext) DecryptECB(data []byte) ([]byte, error) {
	blocks, err := SplitBlocks(data, c.blockSize)
	if err != nil {
		return nil, err
	}

	decrypted := make([]byte, len(data))

	wg := &sync.WaitGroup{}
	errChan := make(chan error, len(blocks))

	for i, block := range blocks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			decryptedBlock, err := c.cipher.Decrypt(block)
			if err != nil {
				errChan <- fmt.Errorf("decryption failed at block %d: %w", i, err)
				return
			}

			copy(decrypted[i*c.blockSize:], decryptedBlock)
		}()
	}

	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		return nil, err
	}

	return decrypted, nil
}

// EncryptCFB generates the keystream for block i by encrypting ciphertext
// block i-1 (the IV for block 0), so blocks are strictly sequential. A final
// short block consumes only the leading keystream bytes and the input needs
// no padding.
func (c *CipherContext) EncryptCFB(data []byte) ([]byte, error) {
	if len(c.iv) != c.blockSize {
		return nil, fmt.Errorf("iv length must be equal to block size %d", c.blockSize)
	}

	encrypted := make([]byte, len(data))
	previousBlock := make([]byte, c.blockSize)
	numberOfBlocks := (len(data) + c.blockSize - 1) / c.blockSize
	copy(previousBlock, c.iv)

	for i := 0; i < numberOfBlocks; i++ {
		keystream, err := c.cipher.Encrypt(previousBlock)
		if err != nil {
			return nil, fmt.Errorf("cannot encrypt feedback block %d: %w", i, err)
		}

		pos := i * c.blockSize
		end := pos + c.blockSize
		if end > len(data) {
			end = len(data)
		}

		currBlock := data[pos:end]
		xoredBlock := xorBlocks(currBlock, keystream)

		copy(encrypted[pos:], xoredBlock)
		copy(previousBlock, encrypted[pos:end])
	}

	return encrypted, nil
}

// DecryptCFB runs the same keystream, feeding back the received ciphertext
// blocks. The block cipher is only ever used in the encrypt direction.
func (c *CipherContext) DecryptCFB(data []byte) ([]byte, error) {
	if len(c.iv) != c.blockSize {
		return nil, fmt.Errorf("iv length must be equal to block size %d", c.blockSize)
	}

	decrypted := make([]byte, len(data))
	previousBlock := make([]byte, c.blockSize)
	numberOfBlocks := (len(data) + c.blockSize - 1) / c.blockSize
	copy(previousBlock, c.iv)

	for i := 0; i < numberOfBlocks; i++ {
		keystream, err := c.cipher.Encrypt(previousBlock)
		if err != nil {
			return nil, fmt.Errorf("cannot encrypt feedback block %d: %w", i, err)
		}

		pos := i * c.blockSize
		end := pos + c.blockSize
		if end > len(data) {
			end = len(data)
		}

		currBlock := data[pos:end]
		xoredBlock := xorBlocks(currBlock, keystream)

		copy(decrypted[pos:], xoredBlock)
		copy(previousBlock, currBlock)
	}

	return decrypted, nil
}

func xorBlocks(a, b []byte) []byte {
	res := make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		res[i] = a[i] ^ b[i]
	}
	return res
}
