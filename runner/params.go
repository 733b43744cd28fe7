package runner

import (
	"fmt"
	"time"

	"github.com/DataDog/datadog-ping/pinger"
	"github.com/DataDog/datadog-ping/resolver"
)

// PingParams are the inputs of a run as given by the caller
type PingParams struct {
	Hostname    string
	Count       int
	PayloadSize int
	Timeout     time.Duration
	TTL         int
	Continuous  bool
	Interval    time.Duration
	WantV4      bool
	WantV6      bool
	Strict      bool
	ReverseDns  bool
}

// DefaultPingParams returns the parameters of a plain `datadog-ping <host>`
func DefaultPingParams(hostname string) PingParams {
	return PingParams{
		Hostname:    hostname,
		Count:       pinger.DefaultCount,
		PayloadSize: pinger.DefaultPayloadSize,
		Timeout:     pinger.DefaultTimeoutMs * time.Millisecond,
		TTL:         pinger.DefaultTTL,
		Interval:    pinger.DefaultInterval,
	}
}

func (p PingParams) validate() error {
	switch {
	case p.Hostname == "":
		return &InvalidParamsError{Err: fmt.Errorf("missing target")}
	case p.PayloadSize < 0:
		return &InvalidParamsError{Err: fmt.Errorf("payload size must not be negative, got %d", p.PayloadSize)}
	case p.Timeout <= 0:
		return &InvalidParamsError{Err: fmt.Errorf("timeout must be positive, got %s", p.Timeout)}
	case p.TTL < pinger.MinTTL || p.TTL > pinger.MaxTTL:
		return &InvalidParamsError{Err: fmt.Errorf("ttl must be between %d and %d, got %d", pinger.MinTTL, pinger.MaxTTL, p.TTL)}
	case p.WantV4 && p.WantV6:
		return &InvalidParamsError{Err: fmt.Errorf("cannot require both IPv4 and IPv6")}
	}
	return nil
}

func (p PingParams) preference() resolver.Preference {
	switch {
	case p.WantV4:
		return resolver.OnlyIPv4
	case p.WantV6:
		return resolver.OnlyIPv6
	default:
		return resolver.PreferIPv4
	}
}
