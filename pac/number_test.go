package pac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	cases := []struct {
		s  string
		n  int
		ok bool
	}{
		{"15", 15, true},
		{" 15 ", 15, true},
		{"15th", 15, true},
		{"-3", -3, true},
		{"+7", 7, true},
		{"0x1f", 31, true},
		{"2026", 2026, true},
		{"JAN", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"0x", 0, false},
		{"-0x", 0, false},
		{"0", 0, true},
	}
	for _, c := range cases {
		n, ok := parseInt(c.s)
		assert.Equal(t, c.ok, ok, c.s)
		if c.ok {
			assert.Equal(t, c.n, n, c.s)
		}
	}
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 9.0, toNumber("9"))
	assert.Equal(t, 9.5, toNumber(" 9.5 "))
	assert.Equal(t, 0.0, toNumber(""))
	assert.Equal(t, 16.0, toNumber("0x10"))
	assert.True(t, math.IsNaN(toNumber("9am")))
	assert.True(t, math.IsNaN(toNumber("0xg")))
	assert.True(t, math.IsNaN(toNumber("0x")))
	assert.Equal(t, 5.0, toNumber("0b101"))
	assert.Equal(t, 7.0, toNumber("0o7"))
	assert.Equal(t, 255.0, toNumber("0XFF"))
	assert.True(t, math.IsNaN(toNumber("0b102")))
	assert.True(t, math.IsNaN(toNumber("-0x10")))
	assert.Equal(t, 1500.0, toNumber("1.5e3"))
	assert.Equal(t, 0.5, toNumber(".5"))
	assert.Equal(t, 5.0, toNumber("5."))

	assert.True(t, math.IsInf(toNumber("Infinity"), 1))
	assert.True(t, math.IsInf(toNumber("+Infinity"), 1))
	assert.True(t, math.IsInf(toNumber("-Infinity"), -1))
	for _, s := range []string{
		"inf", "+Inf", "-inf", "nan", "NaN", "infinity", "INFINITY",
		"1_000", "0x1p4",
	} {
		assert.True(t, math.IsNaN(toNumber(s)), s)
	}

	n, ok := toInt(toNumber("9.9"))
	assert.True(t, ok)
	assert.Equal(t, 9, n)
	_, ok = toInt(toNumber("x"))
	assert.False(t, ok)
}

func TestToInt32(t *testing.T) {
	assert.Equal(t, int32(255), toInt32(255))
	assert.Equal(t, int32(0), toInt32(1<<32))
	assert.Equal(t, int32(-1), toInt32(-1))
	assert.Equal(t, int32(0), toInt32(math.NaN()))
}
