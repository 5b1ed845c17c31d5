package pac

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Script arguments arrive as strings. The helpers below convert them the
// way the PAC function set historically did.

// parseInt reads a leading optionally signed decimal integer, ignoring
// trailing garbage. ok is false when there are no leading digits.
func parseInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if len(s)-i >= 2 && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		return parseHexPrefix(s[i+2:], neg)
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n < math.MaxInt32 {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func parseHexPrefix(s string, neg bool) (n int, ok bool) {
	i := 0
	for ; i < len(s); i++ {
		d := strings.IndexByte("0123456789abcdef", s[i]|0x20)
		if d < 0 {
			break
		}
		if n < math.MaxInt32 {
			n = n*16 + d
		}
	}
	if i == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

var decimalLiteral = regexp.MustCompile(
	`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)$`)

var radixPrefixes = map[byte]int{'x': 16, 'o': 8, 'b': 2}

// toNumber converts a whole string to a number. Blank strings are 0 and
// anything unparsable is NaN. Besides decimal literals, unsigned 0x, 0o and
// 0b prefixed integers and the exact spelling Infinity are accepted.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' {
		if base, ok := radixPrefixes[s[1]|0x20]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	if strings.TrimLeft(s, "+-") == "Infinity" {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// toInt truncates a number toward zero; ok is false for NaN and infinities.
func toInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// toInt32 applies the 32 bit wrap-around integer conversion, mapping NaN
// and infinities to 0.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(math.Mod(math.Trunc(f), 1<<32))))
}
