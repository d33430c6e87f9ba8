package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, value uint8) bool {
	return ((value >> index) & 1) == 1
}

// Set will return the passed byte with the bit at the specified index set to 1.
func Set(index, value uint8) uint8 {
	return value | (1 << index)
}

// Clear will return the passed byte with the bit at the specified index set to 0.
func Clear(index, value uint8) uint8 {
	return value & ^(1 << index)
}

// ExtractBits extracts bits from highBit to lowBit (inclusive).
// Example: ExtractBits(0b11010110, 6, 4) -> 0b101 (extracts bits 6, 5, 4)
func ExtractBits(value uint8, highBit, lowBit uint8) uint8 {
	shift := lowBit
	width := highBit - lowBit + 1
	mask := uint8((1 << width) - 1)
	return (value >> shift) & mask
}

// ExtractBits16 extracts bits from highBit to lowBit (inclusive) of a 16 bit value.
func ExtractBits16(value uint16, highBit, lowBit uint8) uint16 {
	shift := lowBit
	width := highBit - lowBit + 1
	mask := uint16((1 << width) - 1)
	return (value >> shift) & mask
}

// Replicate5 expands a 5 bit channel value to 8 bits by replicating the
// top bits into the low ones. The top 5 bits of the result are always the
// input value, so truncate-then-replicate never changes them.
func Replicate5(value uint8) uint8 {
	v := value & 0x1F
	return (v << 3) | (v >> 2)
}

// Truncate5 reduces an 8 bit channel value to 5 bits by dropping the low
// three bits. No rounding is applied.
func Truncate5(value uint8) uint8 {
	return value >> 3
}
