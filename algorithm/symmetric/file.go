package symmetric

import (
	"fmt"
	"os"
	"path/filepath"
)

// EncryptFile encrypts the whole file in one pass. Bounded inputs only; the
// mode drivers do not support chunked operation because ECB padding is
// terminal and CFB feedback spans the full buffer.
func (c *CipherContext) EncryptFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}

	encrypted, err := c.Encrypt(data)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, encrypted, 0644); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	return nil
}

func (c *CipherContext) DecryptFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}

	decrypted, err := c.Decrypt(data)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, decrypted, 0644); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	return nil
}
