package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// LookupAddrFn is defined as variable to ease testing
var LookupAddrFn = net.DefaultResolver.LookupAddr

// Reverse returns the names addr resolves back to, without trailing dots
func Reverse(ctx context.Context, addr netip.Addr) ([]string, error) {
	if !addr.IsValid() {
		return nil, errors.New("invalid IP address")
	}
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	rawNames, err := LookupAddrFn(ctx, addr.Unmap().String())
	if err != nil {
		return nil, fmt.Errorf("failed to get reverse dns: %w", err)
	}

	names := []string{}
	for _, name := range rawNames {
		names = append(names, strings.TrimRight(name, "."))
	}
	return names, nil
}
