package pac

import "strings"

// DNSDomainIs tests whether host ends with domain. This is a plain suffix
// test: "notexample.com" is in "example.com".
func DNSDomainIs(host, domain string) bool {
	return len(host) >= len(domain) && strings.HasSuffix(host, domain)
}

// IsPlainHostName tests whether host has no domain part.
func IsPlainHostName(host string) bool {
	return !strings.Contains(host, ".")
}

// LocalHostOrDomainIs tests whether host is hostDomain, or is its first
// label.
func LocalHostOrDomainIs(host, hostDomain string) bool {
	return host == hostDomain || strings.HasPrefix(hostDomain, host+".")
}

// DNSDomainLevels returns the number of dots in host.
func DNSDomainLevels(host string) int {
	return strings.Count(host, ".")
}

// IsResolvable tests whether host can be resolved.
func (e *Evaluator) IsResolvable(host string) bool {
	_, ok := e.resolver.Resolve(host)
	if !ok {
		e.log.Debugw("isResolvable: host not resolvable", "host", host)
	}
	return ok
}
