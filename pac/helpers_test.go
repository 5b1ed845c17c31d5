package pac

import (
	"sync"
	"time"
)

// mapResolver resolves from a fixed table and counts lookups.
type mapResolver struct {
	sync.Mutex
	hosts   map[string]string
	local   string
	lookups []string
}

func newMapResolver(hosts map[string]string) *mapResolver {
	return &mapResolver{hosts: hosts, local: "192.168.1.10"}
}

func (r *mapResolver) Resolve(host string) (string, bool) {
	r.Lock()
	defer r.Unlock()
	r.lookups = append(r.lookups, host)
	addr, ok := r.hosts[host]
	return addr, ok
}

func (r *mapResolver) LocalAddress() string {
	return r.local
}

// cst is a fixed zone 8 hours ahead of UTC.
var cst = time.FixedZone("CST", 8*60*60)

func evaluatorAt(t time.Time) *Evaluator {
	return NewEvaluator(nil, FixedClock(t), nil)
}
