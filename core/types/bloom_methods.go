package types

import "fmt"

// BloomByteLength is the number of bytes in a bloom filter (256).
const BloomByteLength = BloomLength

// BytesToBloom converts a byte slice to a Bloom, left-truncating or
// left-padding as necessary to fill exactly 256 bytes.
func BytesToBloom(b []byte) Bloom {
	var bloom Bloom
	bloom.SetBytes(b)
	return bloom
}

// Bytes returns a copy of the bloom filter as a byte slice.
func (b Bloom) Bytes() []byte {
	out := make([]byte, BloomByteLength)
	copy(out, b[:])
	return out
}

// Hex returns the hex string representation of the bloom filter.
func (b Bloom) Hex() string { return fmt.Sprintf("0x%x", b[:]) }

// SetBytes sets the bloom filter from a byte slice, left-padding if shorter
// than 256 bytes or truncating from the left if longer.
func (b *Bloom) SetBytes(data []byte) {
	*b = Bloom{}
	if len(data) > BloomByteLength {
		data = data[len(data)-BloomByteLength:]
	}
	copy(b[BloomByteLength-len(data):], data)
}

// Add inserts data into the bloom filter by setting 3 bit positions
// derived from Keccak256(data).
func (b *Bloom) Add(data []byte) {
	BloomAdd(b, data)
}

// Test checks whether data might be present in the bloom filter.
// Returns true if all 3 bits for the data are set (may be a false positive).
func (b Bloom) Test(data []byte) bool {
	return BloomContains(b, data)
}

// Or performs a bitwise OR of the receiver with another bloom filter,
// storing the result in the receiver.
func (b *Bloom) Or(other Bloom) {
	for i := range b {
		b[i] |= other[i]
	}
}
