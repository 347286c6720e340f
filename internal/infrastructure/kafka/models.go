package kafka

import "time"

// AuditEvent is one record on the cipher audit topic. It never carries key
// material or plaintext, only call metadata.
type AuditEvent struct {
	Operation string    `json:"operation"` // "encrypt" or "decrypt"
	Mode      string    `json:"mode"`      // "ecb" or "cfb"
	UserID    string    `json:"user_id"`
	KeyID     string    `json:"key_id,omitempty"` // empty for inline keys
	Success   bool      `json:"success"`
	At        time.Time `json:"at"`
}
