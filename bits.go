package bitstab

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// BitWidth is the width of an IEEE-754 binary64 encoding.
const BitWidth = 64

// Field widths of binary64.
const (
	SignBits     = 1
	ExponentBits = 11
	MantissaBits = 52
)

// BitString is the big-endian binary64 encoding of a float64 written as
// 64 '0'/'1' characters, sign bit first.
type BitString string

// Encode reinterprets x as its 64-bit pattern. NaN payloads, infinities
// and signed zeros are encoded as-is.
func Encode(x float64) BitString {
	return BitString(fmt.Sprintf("%064b", math.Float64bits(x)))
}

// Decode parses a BitString back into the float64 it encodes.
func Decode(s BitString) (float64, error) {
	if len(s) != BitWidth {
		return 0, fmt.Errorf("decode %q: length %d, want %d: %w", s, len(s), BitWidth, ErrInvalidRange)
	}
	u, err := strconv.ParseUint(string(s), 2, BitWidth)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", s, err)
	}
	return math.Float64frombits(u), nil
}

// Valid reports whether s is exactly 64 binary digits.
func (s BitString) Valid() bool {
	if len(s) != BitWidth {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// Sign returns the sign bit.
func (s BitString) Sign() string { return string(s[:SignBits]) }

// Exponent returns the 11 biased exponent bits.
func (s BitString) Exponent() string { return string(s[SignBits : SignBits+ExponentBits]) }

// Mantissa returns the 52 fraction bits.
func (s BitString) Mantissa() string { return string(s[SignBits+ExponentBits:]) }

// Fields renders s as "sign exponent mantissa" for display.
func (s BitString) Fields() string {
	return s.Sign() + " " + s.Exponent() + " " + s.Mantissa()
}

// CommonPrefixLength returns how many leading bits all encodings share.
// A single value shares all 64 bits with itself.
func CommonPrefixLength(values ...float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	first := math.Float64bits(values[0])
	prefix := BitWidth
	for _, v := range values[1:] {
		if n := bits.LeadingZeros64(first ^ math.Float64bits(v)); n < prefix {
			prefix = n
		}
	}

	return prefix, nil
}

// HammingDistance counts the bit positions where the encodings of x and y
// differ. +0 and -0 are one bit apart.
func HammingDistance(x, y float64) int {
	return bits.OnesCount64(math.Float64bits(x) ^ math.Float64bits(y))
}
