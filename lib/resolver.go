package lib

import (
	"context"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/jaytaylor/go-hostsfile"
	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/richardtsai/pacfuncs/pac"
)

// nolint: golint
const (
	ResolverTypeOS    = "os"
	ResolverTypeDNS   = "dns"
	ResolverTypeHosts = "hosts"
	ResolverTypeChain = "chain"
)

const defaultResolveTimeout = time.Second * 5

var (
	errNoAddress       = errors.New("no address found")
	errUnknownResolver = errors.New("unknown resolver type")
)

// lookuper finds the address of a single host.
type lookuper interface {
	lookup(ctx context.Context, host string) (string, error)
}

// CreateResolver creates a pac.Resolver from the given configuration.
func CreateResolver(
	config ResolverConfig, log *zap.SugaredLogger) (*Resolver, error) {
	l, err := createLookuper(config, config.Type, log)
	if err != nil {
		return nil, err
	}

	r := &Resolver{lookuper: l, timeout: defaultResolveTimeout, log: log}
	if config.Timeout != "" {
		if r.timeout, err = time.ParseDuration(config.Timeout); err != nil {
			return nil, errors.WithStack(err)
		}
		if r.timeout <= 0 {
			return nil, errors.New("'timeout' should be greater than 0")
		}
	}
	if config.LocalAddress != "" {
		if ip := net.ParseIP(config.LocalAddress); ip == nil {
			return nil, errors.Errorf(
				"invalid local address: %s", config.LocalAddress)
		}
		r.localAddr = config.LocalAddress
	}
	return r, nil
}

func createLookuper(
	config ResolverConfig, typ string, log *zap.SugaredLogger) (
	lookuper, error) {
	switch typ {
	case "", ResolverTypeOS:
		return osLookuper{}, nil
	case ResolverTypeDNS:
		return newDNSLookuper(config.Nameservers, config.Net)
	case ResolverTypeHosts:
		return newHostsLookuper(config.HostsFile)
	case ResolverTypeChain:
		if len(config.Chain) == 0 {
			return nil, errors.New("'chain' should not be empty")
		}
		var c chainLookuper
		for _, t := range config.Chain {
			if t == ResolverTypeChain {
				return nil, errors.New("a chain cannot contain another chain")
			}
			l, err := createLookuper(config, t, log)
			if err != nil {
				return nil, err
			}
			c = append(c, l)
		}
		return c, nil
	}
	return nil, errors.Wrap(errUnknownResolver, typ)
}

// Resolver implements pac.Resolver. Every lookup is bounded by a timeout
// and any failure is reported as unresolved.
type Resolver struct {
	lookuper  lookuper
	timeout   time.Duration
	localAddr string
	log       *zap.SugaredLogger
}

var _ pac.Resolver = (*Resolver)(nil)

// Resolve looks up the address of host.
func (r *Resolver) Resolve(host string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	addr, err := r.lookuper.lookup(ctx, host)
	if err != nil {
		r.log.Debugw("failed to resolve host", "host", host, "error", err)
		return "", false
	}
	return addr, true
}

// LocalAddress returns the configured local address, or detects it within
// the lookup timeout.
func (r *Resolver) LocalAddress() string {
	if r.localAddr != "" {
		return r.localAddr
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return DetectLocalAddress(ctx)
}

// pickAddress prefers the first IPv4 address.
func pickAddress(addrs []string) (string, error) {
	for _, a := range addrs {
		if ip := net.ParseIP(a); ip != nil && ip.To4() != nil {
			return a, nil
		}
	}
	if len(addrs) > 0 {
		return addrs[0], nil
	}
	return "", errNoAddress
}

// canonicalName lower cases a host name and trims the final dot.
func canonicalName(host string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
}

type osLookuper struct{}

func (osLookuper) lookup(ctx context.Context, host string) (string, error) {
	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return pickAddress(addrs)
}

// dnsLookuper queries nameservers directly, trying them in order.
type dnsLookuper struct {
	nameservers []string
	client      *dns.Client
}

func newDNSLookuper(nameservers []string, network string) (*dnsLookuper, error) {
	if len(nameservers) == 0 {
		return nil, errors.New("no nameserver defined")
	}
	switch network {
	case "":
		network = "udp"
	case "udp", "tcp":
	default:
		return nil, errors.Errorf("unsupported network: %s", network)
	}
	l := &dnsLookuper{client: &dns.Client{Net: network}}
	for _, ns := range nameservers {
		if _, _, err := net.SplitHostPort(ns); err != nil {
			ns = net.JoinHostPort(ns, "53")
		}
		l.nameservers = append(l.nameservers, ns)
	}
	return l, nil
}

func (l *dnsLookuper) lookup(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		return host, nil
	}
	var err error
	for _, ns := range l.nameservers {
		for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
			var addr string
			if addr, err = l.query(ctx, ns, host, qtype); err == nil {
				return addr, nil
			}
			if ctx.Err() != nil {
				return "", errors.WithStack(ctx.Err())
			}
		}
	}
	return "", err
}

func (l *dnsLookuper) query(
	ctx context.Context, ns, host string, qtype uint16) (string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(canonicalName(host)), qtype)
	answer, _, err := l.client.ExchangeContext(ctx, msg, ns)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if answer.Rcode != dns.RcodeSuccess {
		return "", errors.Errorf(
			"%s answered %s", ns, dns.RcodeToString[answer.Rcode])
	}
	var addrs []string
	for _, rr := range answer.Answer {
		switch rr := rr.(type) {
		case *dns.A:
			addrs = append(addrs, rr.A.String())
		case *dns.AAAA:
			addrs = append(addrs, rr.AAAA.String())
		}
	}
	return pickAddress(addrs)
}

// hostsLookuper resolves from a hosts file read at creation.
type hostsLookuper struct {
	hosts map[string][]string // name -> addresses
}

func newHostsLookuper(path string) (*hostsLookuper, error) {
	if path == "" {
		path = defaultHostsFile()
	}
	ipToNames, err := hostsfile.ParseHosts(ioutil.ReadFile(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hosts file")
	}

	l := &hostsLookuper{hosts: make(map[string][]string)}
	for ip, names := range ipToNames {
		if net.ParseIP(ip) == nil {
			continue
		}
		for _, name := range names {
			if strings.HasPrefix(name, "#") {
				break
			}
			name = canonicalName(name)
			l.hosts[name] = append(l.hosts[name], ip)
		}
	}
	for _, addrs := range l.hosts {
		sort.Strings(addrs)
	}
	return l, nil
}

func (l *hostsLookuper) lookup(_ context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		return host, nil
	}
	addrs, ok := l.hosts[canonicalName(host)]
	if !ok {
		return "", errors.Wrap(errNoAddress, host)
	}
	return pickAddress(addrs)
}

func defaultHostsFile() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(
			os.Getenv("SystemRoot"), "System32", "drivers", "etc", "hosts")
	}
	return "/etc/hosts"
}

// chainLookuper returns the first successful lookup.
type chainLookuper []lookuper

func (c chainLookuper) lookup(ctx context.Context, host string) (string, error) {
	err := errNoAddress
	for _, l := range c {
		var addr string
		if addr, err = l.lookup(ctx, host); err == nil {
			return addr, nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return "", err
}
