package bitstab

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownPatterns(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"one", 1.0, "0" + "01111111111" + strings.Repeat("0", 52)},
		{"minus two", -2.0, "1" + "10000000000" + strings.Repeat("0", 52)},
		{"zero", 0.0, strings.Repeat("0", 64)},
		{"negative zero", math.Copysign(0, -1), "1" + strings.Repeat("0", 63)},
		{"+inf", math.Inf(1), "0" + "11111111111" + strings.Repeat("0", 52)},
		{"smallest subnormal", math.SmallestNonzeroFloat64, strings.Repeat("0", 63) + "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.x)
			assert.Equal(t, BitString(tt.want), got)
			assert.True(t, got.Valid())
			assert.Len(t, string(got), BitWidth)
		})
	}
}

func TestEncode_NaN(t *testing.T) {
	s := Encode(math.NaN())
	require.True(t, s.Valid())
	assert.Equal(t, "11111111111", s.Exponent())
	assert.NotEqual(t, strings.Repeat("0", 52), s.Mantissa())
}

func TestBitString_Fields(t *testing.T) {
	s := Encode(-1.5)
	assert.Equal(t, "1", s.Sign())
	assert.Equal(t, "01111111111", s.Exponent())
	assert.Equal(t, "1"+strings.Repeat("0", 51), s.Mantissa())
	assert.Equal(t, "1 01111111111 1"+strings.Repeat("0", 51), s.Fields())
}

// TestDecode_RoundTrip verifies Decode(Encode(x)) reproduces x bit for bit.
func TestDecode_RoundTrip(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, math.Pi, 1e-300, -1e300,
		math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), math.NaN(),
	}
	series, err := NewCascade().Series(0.5, 1, 60)
	require.NoError(t, err)
	values = append(values, series...)

	for _, x := range values {
		got, err := Decode(Encode(x))
		require.NoError(t, err)
		if math.Float64bits(got) != math.Float64bits(x) {
			t.Errorf("round trip of %v gave %v", x, got)
		}
	}

	t.Logf("✓ Round trip exact for %d values", len(values))
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("0101")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Decode(BitString(strings.Repeat("2", 64)))
	assert.Error(t, err)

	assert.False(t, BitString(strings.Repeat("0", 63)+"x").Valid())
}

func TestCommonPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"singleton", []float64{math.Pi}, 64},
		{"identical", []float64{1, 1, 1}, 64},
		{"sign differs", []float64{1, -1}, 0},
		{"signed zeros", []float64{0, math.Copysign(0, -1)}, 0},
		{"exponent differs", []float64{1, 2}, 1},
		{"first mantissa bit", []float64{1, 1.5}, 12},
		{"earliest disagreement wins", []float64{1, 1.5, 2}, 1},
		{"last mantissa bit", []float64{1, math.Nextafter(1, 2)}, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommonPrefixLength(tt.values...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommonPrefixLength_Empty(t *testing.T) {
	_, err := CommonPrefixLength()
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestCommonPrefixLength_MatchesStringComparison checks the prefix against a
// character-by-character scan of the encoded strings.
func TestCommonPrefixLength_MatchesStringComparison(t *testing.T) {
	values, err := NewCascade().Series(0.5, 3, 30)
	require.NoError(t, err)

	encoded := make([]BitString, len(values))
	for i, v := range values {
		encoded[i] = Encode(v)
	}

	want := 0
scan:
	for pos := 0; pos < BitWidth; pos++ {
		for _, s := range encoded[1:] {
			if s[pos] != encoded[0][pos] {
				break scan
			}
		}
		want++
	}

	got, err := CommonPrefixLength(values...)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommonPrefixLength_Monotone(t *testing.T) {
	values, err := NewCascade().Series(0.5, 1, 60)
	require.NoError(t, err)
	AssertPrefixMonotone(t, values)

	AssertPrefixMonotone(t, []float64{1, 1, math.Nextafter(1, 2), 1.5, 2, -2})
}

func TestHammingDistance(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.Equal(t, 1, HammingDistance(negZero, 0))
	assert.Equal(t, 1, HammingDistance(1, 1.5))
	assert.Equal(t, 11, HammingDistance(1, 2))
	assert.Equal(t, 64, HammingDistance(0, math.Float64frombits(math.MaxUint64)))
	assert.Equal(t, 0, HammingDistance(math.Pi, math.Pi))
}

func TestHammingDistance_Properties(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, 1.5, math.Pi, 1e-300, math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, x := range values {
		for _, y := range values {
			AssertHammingSymmetric(t, x, y)
		}
	}
}
