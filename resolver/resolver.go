// Package resolver turns a target given on the command line into the address to ping
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/DataDog/datadog-ping/cache"
	"github.com/DataDog/datadog-ping/log"
)

const (
	lookupTimeout = 5 * time.Second
	cacheExpire   = time.Minute
	cachePurge    = 30 * time.Second
)

// Preference selects which address family a hostname resolves to
type Preference int

const (
	// PreferIPv4 picks an IPv4 address when there is one, else an IPv6 address
	PreferIPv4 Preference = iota
	// OnlyIPv4 only accepts IPv4 addresses
	OnlyIPv4
	// OnlyIPv6 only accepts IPv6 addresses
	OnlyIPv6
)

// ErrNoAddress is returned when a name resolves but not to a usable address
var ErrNoAddress = errors.New("no valid IP address found")

// LookupIPFn is defined as variable to ease testing
var LookupIPFn = func(ctx context.Context, host string) ([]net.IP, error) {
	return net.DefaultResolver.LookupIP(ctx, "ip", host)
}

var lookupCache = cache.New[[]netip.Addr](cacheExpire, cachePurge)

// ResolutionError is returned when the target is neither an IP address nor a
// hostname resolving to one
type ResolutionError struct {
	Host string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve host %q: %s", e.Host, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolve returns the address to ping for target. Literal addresses are used
// as is, with IPv4-mapped IPv6 addresses unmapped.
func Resolve(ctx context.Context, target string, pref Preference) (netip.Addr, error) {
	host := strings.Trim(strings.TrimSpace(target), "[]")
	if host == "" {
		return netip.Addr{}, &ResolutionError{Host: target, Err: errors.New("empty target")}
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		addr = addr.Unmap()
		if !accepts(pref, addr) {
			return netip.Addr{}, &ResolutionError{Host: host, Err: fmt.Errorf("%s does not match the requested address family", addr)}
		}
		return addr, nil
	}

	addrs, err := lookupCache.Get(host, func() ([]netip.Addr, error) {
		return lookup(ctx, host)
	})
	if err != nil {
		return netip.Addr{}, &ResolutionError{Host: host, Err: err}
	}

	addr, ok := pick(addrs, pref)
	if !ok {
		return netip.Addr{}, &ResolutionError{Host: host, Err: ErrNoAddress}
	}
	log.Debugf("resolved %s to %s (candidates: %v)", host, addr, addrs)
	return addr, nil
}

// FlushCache forgets every cached lookup
func FlushCache() {
	lookupCache.Flush()
}

func lookup(ctx context.Context, host string) ([]netip.Addr, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	ips, err := LookupIPFn(ctx, host)
	if err != nil {
		return nil, err
	}

	addrs := make([]netip.Addr, 0, len(ips))
	for _, ip := range ips {
		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			continue
		}
		addrs = append(addrs, addr.Unmap())
	}
	return addrs, nil
}

func pick(addrs []netip.Addr, pref Preference) (netip.Addr, bool) {
	var first6 netip.Addr
	for _, addr := range addrs {
		if addr.Is4() {
			if pref != OnlyIPv6 {
				return addr, true
			}
			continue
		}
		if !first6.IsValid() {
			first6 = addr
		}
	}
	if first6.IsValid() && pref != OnlyIPv4 {
		return first6, true
	}
	return netip.Addr{}, false
}

func accepts(pref Preference, addr netip.Addr) bool {
	switch pref {
	case OnlyIPv4:
		return addr.Is4()
	case OnlyIPv6:
		return addr.Is6()
	default:
		return true
	}
}
