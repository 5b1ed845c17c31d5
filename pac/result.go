package pac

import (
	"math/rand"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ConnectionType is the kind of a directive returned by FindProxyForURL.
type ConnectionType string

// All the connection types a FindProxyForURL result may contain.
const (
	Direct ConnectionType = "DIRECT"
	HTTP   ConnectionType = "HTTP"
	HTTPS  ConnectionType = "HTTPS"
	Proxy  ConnectionType = "PROXY"
	SOCKS  ConnectionType = "SOCKS"
	SOCKS4 ConnectionType = "SOCKS4"
	SOCKS5 ConnectionType = "SOCKS5"
)

var connectionTypes = []ConnectionType{
	Direct, HTTP, HTTPS, Proxy, SOCKS, SOCKS4, SOCKS5}

// ParseConnectionType parses a connection type case-insensitively.
func ParseConnectionType(s string) (ConnectionType, error) {
	for _, ct := range connectionTypes {
		if strings.EqualFold(string(ct), s) {
			return ct, nil
		}
	}
	return "", errors.Errorf("'%s' is not a valid connection type", s)
}

const resultSeparator = ";"

var directivePattern = regexp.MustCompile(
	`^(?i)(DIRECT|HTTPS?|PROXY|SOCKS[45]?)(?:\s+([^\s;]+))?$`)

// Directive is a single entry of a FindProxyForURL result, such as
// "DIRECT" or "PROXY 10.1.1.1:8080".
type Directive struct {
	Type ConnectionType
	// HostPort is empty for DIRECT.
	HostPort string
}

// ParseDirective parses one directive. Surrounding spaces are ignored.
func ParseDirective(s string) (Directive, error) {
	m := directivePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Directive{}, errors.Errorf("invalid proxy directive: '%s'", s)
	}
	ct, err := ParseConnectionType(m[1])
	if err != nil {
		return Directive{}, err
	}
	if ct == Direct {
		return Directive{Type: Direct}, nil
	}
	if m[2] == "" {
		return Directive{}, errors.Errorf(
			"a proxy is required for connection type %s", ct)
	}
	return Directive{Type: ct, HostPort: m[2]}, nil
}

// IsDirect tests whether the directive means connecting without a proxy.
func (d Directive) IsDirect() bool {
	return d.Type == Direct
}

// IsProxy tests whether the directive goes through a proxy.
func (d Directive) IsProxy() bool {
	return !d.IsDirect()
}

// ProxyHost returns the host part of the proxy address.
func (d Directive) ProxyHost() string {
	if d.IsDirect() {
		return ""
	}
	host, _, err := net.SplitHostPort(d.HostPort)
	if err != nil {
		return d.HostPort
	}
	return host
}

// ProxyPort returns the port of the proxy address, or 0 if there is none.
func (d Directive) ProxyPort() int {
	if d.IsDirect() {
		return 0
	}
	_, p, err := net.SplitHostPort(d.HostPort)
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return 0
	}
	return port
}

func (d Directive) String() string {
	if d.HostPort == "" {
		return string(d.Type)
	}
	return string(d.Type) + " " + d.HostPort
}

// Result is the parsed return value of FindProxyForURL.
// It always contains at least one directive.
type Result []Directive

// ParseResult parses the return value of FindProxyForURL. An empty value
// means DIRECT.
func ParseResult(s string) (Result, error) {
	if strings.TrimSpace(s) == "" {
		return Result{{Type: Direct}}, nil
	}
	var r Result
	for _, part := range strings.Split(s, resultSeparator) {
		if strings.TrimSpace(part) == "" {
			continue // tolerate a trailing separator
		}
		d, err := ParseDirective(part)
		if err != nil {
			return nil, err
		}
		r = append(r, d)
	}
	if len(r) == 0 {
		return nil, errors.Errorf("invalid proxy find result: '%s'", s)
	}
	return r, nil
}

// First returns the first directive.
func (r Result) First() Directive {
	return r[0]
}

// FirstProxy returns the first directive that is not DIRECT.
func (r Result) FirstProxy() (Directive, bool) {
	for _, d := range r {
		if d.IsProxy() {
			return d, true
		}
	}
	return Directive{}, false
}

// Random picks a directive uniformly.
func (r Result) Random() Directive {
	return r[rand.Intn(len(r))]
}

// Normalize returns a copy of r with duplicated directives removed,
// keeping the first occurrence of each.
func (r Result) Normalize() Result {
	seen := make(map[Directive]struct{}, len(r))
	n := make(Result, 0, len(r))
	for _, d := range r {
		if _, dup := seen[d]; !dup {
			seen[d] = struct{}{}
			n = append(n, d)
		}
	}
	return n
}

func (r Result) String() string {
	parts := make([]string, len(r))
	for i, d := range r {
		parts[i] = d.String()
	}
	return strings.Join(parts, resultSeparator+" ")
}
