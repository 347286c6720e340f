package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// AESKey is a stored, named AES-128 key. KeyHex always holds the normalized
// 16 key bytes in hex.
type AESKey struct {
	ID        string
	OwnerID   string
	Name      string
	KeyHex    string
	CreatedAt time.Time
}

// CipherRequest carries one encrypt or decrypt call through the service
// layer. Exactly one of Key (inline key material) or KeyID (stored key)
// is expected.
type CipherRequest struct {
	Plaintext string
	CipherHex string
	Key       string
	KeyID     string
	Mode      string
	IV        string
}

type CipherResult struct {
	CipherHex string
	IVHex     string
}
