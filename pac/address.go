package pac

import (
	"strconv"
	"strings"
)

// IPv4 is an IPv4 address packed in network byte order.
type IPv4 uint32

// EncodeAddr packs a dotted-quad string into an IPv4. Every part is
// truncated to its low 8 bits; missing or non-numeric parts count as 0.
// The input is not validated.
func EncodeAddr(s string) IPv4 {
	parts := strings.Split(s, ".")
	var addr IPv4
	for i := 0; i < 4; i++ {
		var b int32
		if i < len(parts) {
			b = toInt32(toNumber(parts[i]))
		}
		addr |= IPv4(uint32(b)&0xff) << uint(24-8*i)
	}
	return addr
}

// DecodeAddr is the inverse of EncodeAddr for well-formed addresses.
func DecodeAddr(addr IPv4) string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(addr >> uint(24-8*i) & 0xff)))
	}
	return b.String()
}

func (a IPv4) String() string {
	return DecodeAddr(a)
}
