package pac

// Unresolved is what dnsResolve renders for a host that could not be
// resolved.
const Unresolved = "null"

// Resolver is the name resolution capability consumed by the
// resolution-dependent predicates.
//
// Resolve returns the address of host, or ok == false if it could not be
// resolved for any reason (including timeouts). LocalAddress returns the
// outward-facing address of the local machine.
//
// Implementations must be safe for concurrent use.
type Resolver interface {
	Resolve(host string) (addr string, ok bool)
	LocalAddress() string
}

type nullResolver struct{}

func (nullResolver) Resolve(string) (string, bool) { return "", false }

func (nullResolver) LocalAddress() string { return "127.0.0.1" }
