package aes

// reductionPoly is the low byte of the AES modulus x^8 + x^4 + x^3 + x + 1.
const reductionPoly = 0x1b

// gfMul multiplies two elements of GF(2^8), reducing by the AES polynomial
// whenever the intermediate product overflows the 8th bit.
func gfMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= reductionPoly
		}
		b >>= 1
	}
	return result
}

// gfInverse returns the multiplicative inverse of a in GF(2^8).
// The inverse of 0 is defined as 0 for the S-box construction.
func gfInverse(a byte) byte {
	if a == 0 {
		return 0
	}
	for b := 1; b < 256; b++ {
		if gfMul(a, byte(b)) == 1 {
			return byte(b)
		}
	}
	return 0
}
