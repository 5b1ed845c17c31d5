package pac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDNSDomainIs(t *testing.T) {
	assert.True(t, DNSDomainIs("www.example.com", "example.com"))
	assert.True(t, DNSDomainIs("www.example.com", ".example.com"))
	assert.True(t, DNSDomainIs("example.com", "example.com"))
	assert.False(t, DNSDomainIs("example.com", "www.example.com"))
	assert.False(t, DNSDomainIs("www.example.org", "example.com"))
	// suffix only, labels are not respected
	assert.True(t, DNSDomainIs("notexample.com", "example.com"))
	assert.True(t, DNSDomainIs("evildomain.com", "domain.com"))
}

func TestIsPlainHostName(t *testing.T) {
	assert.True(t, IsPlainHostName("www"))
	assert.True(t, IsPlainHostName(""))
	assert.False(t, IsPlainHostName("www.example.com"))
	assert.False(t, IsPlainHostName("localhost."))
}

func TestLocalHostOrDomainIs(t *testing.T) {
	queries := [][3]string{
		{"www.example.com", "www.example.com", "true"},
		{"www", "www.example.com", "true"},
		{"www.example.org", "www.example.com", "false"},
		{"home", "www.example.com", "false"},
		{"www.ex", "www.example.com", "false"},
		{"ww", "www.example.com", "false"},
	}
	for _, q := range queries {
		assert.Equal(t, q[2] == "true", LocalHostOrDomainIs(q[0], q[1]),
			"localHostOrDomainIs(%s, %s)", q[0], q[1])
	}
}

func TestDNSDomainLevels(t *testing.T) {
	assert.Equal(t, 0, DNSDomainLevels("www"))
	assert.Equal(t, 1, DNSDomainLevels("example.com"))
	assert.Equal(t, 2, DNSDomainLevels("www.example.com"))
	assert.Equal(t, 3, DNSDomainLevels("a..b."))
}

func TestIsResolvable(t *testing.T) {
	r := newMapResolver(map[string]string{"www.example.com": "93.184.216.34"})
	e := NewEvaluator(r, nil, nil)
	assert.True(t, e.IsResolvable("www.example.com"))
	assert.False(t, e.IsResolvable("bogus.example.com"))
	assert.Equal(t, "93.184.216.34", e.DNSResolve("www.example.com"))
	assert.Equal(t, Unresolved, e.DNSResolve("bogus.example.com"))
	assert.Equal(t, "192.168.1.10", e.MyIPAddress())
}

func TestNilResolver(t *testing.T) {
	e := NewEvaluator(nil, nil, nil)
	assert.False(t, e.IsResolvable("localhost"))
	assert.Equal(t, "127.0.0.1", e.MyIPAddress())
}
