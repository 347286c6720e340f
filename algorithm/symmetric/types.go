package symmetric

import "errors"

type CipherMode int

const (
	ECB CipherMode = iota
	CFB
)

type PaddingMode int

const (
	PKCS7 PaddingMode = iota
)

var (
	ErrMisalignedLength = errors.New("data length is not a multiple of the block size")
	ErrInvalidPadding   = errors.New("invalid PKCS7 padding")
	ErrUnsupportedMode  = errors.New("unsupported cipher mode")
)

// CipherScheme is the single-block capability a mode drives. Implementations
// must be total over correctly sized inputs and must not keep state across
// blocks.
type CipherScheme interface {
	SetKey(key []byte) error
	Encrypt(block []byte) ([]byte, error)
	Decrypt(block []byte) ([]byte, error)
	BlockSize() int
}
