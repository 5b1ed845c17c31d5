package pac

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// ErrUnknownFunction is returned by Call for a name that is not a PAC
// predicate.
var ErrUnknownFunction = errors.New("unknown function")

type function struct {
	// arity is the exact argument count, or -1 for variadic functions.
	arity int
	call  func(e *Evaluator, args []string) (string, error)
}

var functions = map[string]function{
	"isInNet": {3, func(e *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(e.IsInNet(a[0], a[1], a[2])), nil
	}},
	"dnsDomainIs": {2, func(_ *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(DNSDomainIs(a[0], a[1])), nil
	}},
	"isPlainHostName": {1, func(_ *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(IsPlainHostName(a[0])), nil
	}},
	"localHostOrDomainIs": {2, func(_ *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(LocalHostOrDomainIs(a[0], a[1])), nil
	}},
	"dnsDomainLevels": {1, func(_ *Evaluator, a []string) (string, error) {
		return strconv.Itoa(DNSDomainLevels(a[0])), nil
	}},
	"isResolvable": {1, func(e *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(e.IsResolvable(a[0])), nil
	}},
	"shExpMatch": {2, func(_ *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(ShExpMatch(a[0], a[1])), nil
	}},
	"weekdayRange": {-1, func(e *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(e.WeekdayRange(a...)), nil
	}},
	"dateRange": {-1, func(e *Evaluator, a []string) (string, error) {
		return strconv.FormatBool(e.DateRange(a...)), nil
	}},
	"timeRange": {-1, func(e *Evaluator, a []string) (string, error) {
		ok, err := e.TimeRange(a...)
		return strconv.FormatBool(ok), err
	}},
	"dnsResolve": {1, func(e *Evaluator, a []string) (string, error) {
		return e.DNSResolve(a[0]), nil
	}},
	"myIpAddress": {0, func(e *Evaluator, _ []string) (string, error) {
		return e.MyIPAddress(), nil
	}},
}

// FunctionNames returns the names accepted by Call, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FunctionArity returns the exact argument count of a predicate, or -1
// when it takes a variable number of arguments.
func FunctionArity(name string) (arity int, ok bool) {
	f, ok := functions[name]
	return f.arity, ok
}

// Call invokes a predicate by its PAC name with positional arguments and
// renders the result as a string ("true", "false", a number or an
// address). An error means the evaluation must be aborted.
func (e *Evaluator) Call(name string, args ...string) (string, error) {
	f, ok := functions[name]
	if !ok {
		return "", errors.Wrap(ErrUnknownFunction, name)
	}
	if f.arity >= 0 && len(args) != f.arity {
		return "", errors.Errorf(
			"%s: expected %d arguments, got %d", name, f.arity, len(args))
	}
	return f.call(e, args)
}
