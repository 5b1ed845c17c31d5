package pac

import (
	"regexp"
	"strconv"
)

var ipv4Shape = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)

// parseIPv4Literal reports whether s has the dotted-quad shape, and if so
// whether every octet is within [0, 255].
func parseIPv4Literal(s string) (isShape, valid bool) {
	m := ipv4Shape.FindStringSubmatch(s)
	if m == nil {
		return false, false
	}
	for _, octet := range m[1:] {
		if n, _ := strconv.Atoi(octet); n > 255 {
			return true, false
		}
	}
	return true, true
}

// IsInNet tests whether address belongs to the network given by pattern and
// mask. A host name is resolved first; an unresolvable host or a malformed
// literal never matches.
func (e *Evaluator) IsInNet(address, pattern, mask string) bool {
	isShape, valid := parseIPv4Literal(address)
	if isShape && !valid {
		return false
	}
	if !isShape {
		addr, ok := e.resolver.Resolve(address)
		if !ok {
			e.log.Debugw("isInNet: host not resolvable", "host", address)
			return false
		}
		address = addr
	}

	host := EncodeAddr(address)
	pat := EncodeAddr(pattern)
	m := EncodeAddr(mask)
	return host&m == pat&m
}
