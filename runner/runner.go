package runner

import (
	"context"
	"fmt"

	"github.com/DataDog/datadog-ping/log"
	"github.com/DataDog/datadog-ping/packets"
	"github.com/DataDog/datadog-ping/pinger"
	"github.com/DataDog/datadog-ping/resolver"
	"github.com/DataDog/datadog-ping/result"
)

// OpenConnFn is defined as variable to ease testing
var OpenConnFn = pinger.OpenSocket

// RunPing resolves the target, opens the socket and runs the pinger. The
// target is resolved before any socket is opened. reporter may be nil.
func RunPing(ctx context.Context, params PingParams, reporter *pinger.Reporter) (*result.Results, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	target, err := resolver.Resolve(ctx, params.Hostname, params.preference())
	if err != nil {
		return nil, err
	}

	family := packets.FamilyOf(target)
	conn, err := OpenConnFn(family, params.TTL, params.Timeout)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			_ = log.Warnf("failed to close socket: %s", err)
		}
	}()

	cfg := pinger.Config{
		Target:      target,
		Count:       params.Count,
		PayloadSize: params.PayloadSize,
		Timeout:     params.Timeout,
		TTL:         params.TTL,
		Continuous:  params.Continuous,
		Interval:    params.Interval,
		Strict:      params.Strict,
	}
	log.Debugf("pinging %s (%s) with %+v", params.Hostname, target, cfg)

	stats, err := pinger.NewPinger(cfg, conn, reporter).Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("ping to %s failed: %w", target, err)
	}

	log.Infof("ping to %s done: %d sent, %d received", target, stats.Sent, stats.Received)

	results := result.New(resultParams(params))
	results.Destination = result.Destination{
		Hostname: params.Hostname,
		IP:       target.String(),
	}
	if params.ReverseDns {
		// a continuous run only ends once ctx is canceled
		names, err := resolver.Reverse(context.WithoutCancel(ctx), target)
		if err != nil {
			log.Debugf("reverse dns for %s: %s", target, err)
		}
		results.Destination.ReverseDns = names
	}
	results.SetProbe(result.ProbeStats{
		Sent:     stats.Sent,
		Received: stats.Received,
		Rtts:     stats.Rtts,
		MinRtt:   stats.MinRtt,
		MaxRtt:   stats.MaxRtt,
		TotalRtt: stats.TotalRtt,
		Jitter:   stats.Jitter(),
	})
	return results, nil
}

// ErrorResults wraps a failed run into a Results document
func ErrorResults(params PingParams, err error) *result.Results {
	classified := ClassifyError(err)
	results := result.New(resultParams(params))
	results.Error = &result.Error{
		Code:    string(classified.Code),
		Message: classified.Message,
	}
	return results
}

func resultParams(params PingParams) result.Params {
	return result.Params{
		Hostname:    params.Hostname,
		Count:       params.Count,
		PayloadSize: params.PayloadSize,
		TimeoutMs:   params.Timeout.Milliseconds(),
		TTL:         params.TTL,
		Continuous:  params.Continuous,
		Strict:      params.Strict,
	}
}
