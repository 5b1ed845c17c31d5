// Package pac implements the predicate functions available to Proxy
// Auto-Config scripts.
//
// Predicates that depend on nothing but their arguments are plain
// functions. The ones that consult name resolution or the clock are methods
// of Evaluator, which carries those capabilities explicitly.
package pac

import (
	"go.uber.org/zap"
)

// Evaluator evaluates PAC predicates against a Resolver and a Clock.
// It holds no mutable state and is safe for concurrent use if its Resolver
// is.
type Evaluator struct {
	resolver Resolver
	clock    Clock
	log      *zap.SugaredLogger
}

// NewEvaluator creates an Evaluator. A nil resolver resolves nothing, a nil
// clock reads the system clock and a nil logger discards everything.
func NewEvaluator(
	resolver Resolver, clock Clock, log *zap.SugaredLogger) *Evaluator {
	if resolver == nil {
		resolver = nullResolver{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Evaluator{resolver: resolver, clock: clock, log: log}
}

// DNSResolve returns the address of host, or Unresolved.
func (e *Evaluator) DNSResolve(host string) string {
	addr, ok := e.resolver.Resolve(host)
	if !ok {
		e.log.Debugw("host not resolvable", "host", host)
		return Unresolved
	}
	return addr
}

// MyIPAddress returns the address of the local machine.
func (e *Evaluator) MyIPAddress() string {
	return e.resolver.LocalAddress()
}
