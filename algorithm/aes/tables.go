package aes

var (
	sBox    [256]byte
	invSBox [256]byte
	rcon    [11]byte
)

func init() {
	for i := 0; i < 256; i++ {
		sBox[i] = affineTransform(gfInverse(byte(i)))
	}
	for i := 0; i < 256; i++ {
		invSBox[sBox[i]] = byte(i)
	}

	rc := byte(1)
	for i := 1; i <= 10; i++ {
		rcon[i] = rc
		rc = gfMul(rc, 0x02)
	}
}

// affineTransform applies the S-box affine map over GF(2):
// bit i of the output is b_i ^ b_(i+4) ^ b_(i+5) ^ b_(i+6) ^ b_(i+7) ^ c_i
// with c = 0x63.
func affineTransform(b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		bit := (b >> i) & 1
		bit ^= (b >> ((i + 4) % 8)) & 1
		bit ^= (b >> ((i + 5) % 8)) & 1
		bit ^= (b >> ((i + 6) % 8)) & 1
		bit ^= (b >> ((i + 7) % 8)) & 1
		result |= bit << i
	}
	return result ^ 0x63
}
