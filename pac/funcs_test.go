package pac

import (
	"sort"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	r := newMapResolver(map[string]string{"intranet": "10.1.2.3"})
	e := NewEvaluator(r, FixedClock(monday), nil)

	calls := []struct {
		name string
		args []string
		exp  string
	}{
		{"isInNet", []string{"intranet", "10.0.0.0", "255.0.0.0"}, "true"},
		{"isInNet", []string{"999.1.1.1", "1.1.0.0", "255.255.0.0"}, "false"},
		{"dnsDomainIs", []string{"www.example.com", "example.com"}, "true"},
		{"isPlainHostName", []string{"www"}, "true"},
		{"localHostOrDomainIs", []string{"www", "www.example.com"}, "true"},
		{"dnsDomainLevels", []string{"www.example.com"}, "2"},
		{"isResolvable", []string{"intranet"}, "true"},
		{"isResolvable", []string{"internet"}, "false"},
		{"shExpMatch", []string{"www.example.com", "*.example.com"}, "true"},
		{"weekdayRange", []string{"MON", "FRI"}, "true"},
		{"dateRange", []string{"OCT"}, "true"},
		{"timeRange", []string{"9", "0", "17", "0"}, "true"},
		{"dnsResolve", []string{"intranet"}, "10.1.2.3"},
		{"dnsResolve", []string{"internet"}, "null"},
		{"myIpAddress", nil, "192.168.1.10"},
	}
	for _, c := range calls {
		res, err := e.Call(c.name, c.args...)
		require.NoError(t, err, "%s(%v)", c.name, c.args)
		assert.Equal(t, c.exp, res, "%s(%v)", c.name, c.args)
	}
}

func TestCallErrors(t *testing.T) {
	e := NewEvaluator(nil, FixedClock(monday), nil)

	_, err := e.Call("FindProxyForURL", "http://example.com/", "example.com")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownFunction, errors.Cause(err))

	_, err = e.Call("isInNet", "10.0.0.1", "10.0.0.0")
	assert.Error(t, err)
	_, err = e.Call("myIpAddress", "extra")
	assert.Error(t, err)

	_, err = e.Call("timeRange", "9", "0", "17")
	require.Error(t, err)
	assert.Equal(t, ErrBadTimeRangeArgs, errors.Cause(err))
}

func TestFunctionNames(t *testing.T) {
	names := FunctionNames()
	assert.Len(t, names, 12)
	assert.Contains(t, names, "shExpMatch")
	assert.Contains(t, names, "weekdayRange")
	assert.True(t, sort.StringsAreSorted(names))
}

func TestFunctionArity(t *testing.T) {
	for _, name := range FunctionNames() {
		_, ok := FunctionArity(name)
		assert.True(t, ok, name)
	}
	n, ok := FunctionArity("isInNet")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	n, _ = FunctionArity("myIpAddress")
	assert.Equal(t, 0, n)
	n, _ = FunctionArity("timeRange")
	assert.Equal(t, -1, n)
	_, ok = FunctionArity("FindProxyForURL")
	assert.False(t, ok)
}

func TestCallConcurrently(t *testing.T) {
	r := newMapResolver(map[string]string{"intranet": "10.1.2.3"})
	e := NewEvaluator(r, FixedClock(monday), nil)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = e.Call("isInNet", "intranet", "10.0.0.0", "255.0.0.0")
		}(i)
	}
	wg.Wait()
	for _, res := range results {
		assert.Equal(t, "true", res)
	}
	assert.Len(t, r.lookups, len(results), "lookups are not cached")
}
