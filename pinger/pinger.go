// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package pinger sends ICMP echo requests to a single target, one at a time,
// and accumulates round trip statistics
package pinger

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"os"
	"time"

	"github.com/DataDog/datadog-ping/log"
	"github.com/DataDog/datadog-ping/packets"
)

const (
	DefaultCount       = 4
	DefaultPayloadSize = 56
	DefaultTimeoutMs   = 1000
	DefaultTTL         = 128
	DefaultInterval    = time.Second

	MinTTL = 1
	MaxTTL = 255
)

type (
	// Config defines a single ping run. It is not modified once the run starts.
	Config struct {
		// Target is the resolved address to ping
		Target netip.Addr
		// Count is the number of echo requests to send, ignored when Continuous is set
		Count int
		// PayloadSize is the number of filler bytes after the ICMP header
		PayloadSize int
		// Timeout bounds both the send and the wait for a reply of each attempt
		Timeout time.Duration
		// TTL is the IPv4 TTL or IPv6 hop limit of outgoing requests
		TTL int
		// Continuous pings until the run context is canceled
		Continuous bool
		// Interval is the pause between two attempts, DefaultInterval when zero
		Interval time.Duration
		// Strict only accepts echo replies carrying our identifier and sequence
		// number. By default any datagram received in time counts as a reply.
		Strict bool
	}

	// Pinger drives the send/receive cycle over a Conn
	Pinger struct {
		cfg      Config
		family   packets.Family
		conn     Conn
		reporter *Reporter

		// Filler provides payload bytes, a pseudo random source is used when nil
		Filler io.Reader

		now func() time.Time
	}
)

// NewPinger creates a Pinger. The caller keeps ownership of conn and must close it.
// reporter may be nil to run silently.
func NewPinger(cfg Config, conn Conn, reporter *Reporter) *Pinger {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Pinger{
		cfg:      cfg,
		family:   packets.FamilyOf(cfg.Target),
		conn:     conn,
		reporter: reporter,
		now:      time.Now,
	}
}

// Config returns the run configuration
func (p *Pinger) Config() Config {
	return p.cfg
}

// Run sends echo requests until Count attempts are done, or until ctx is canceled
// in continuous mode, then prints the summary. Lost packets are not errors.
func (p *Pinger) Run(ctx context.Context) (*Statistics, error) {
	packet, err := packets.BuildEchoRequest(p.cfg.PayloadSize, p.family, p.Filler)
	if err != nil {
		return nil, fmt.Errorf("failed to build echo request: %w", err)
	}

	stats := NewStatistics()
	for attempt := 1; p.cfg.Continuous || attempt <= p.cfg.Count; attempt++ {
		if ctx.Err() != nil {
			log.Debugf("ping to %s interrupted after %d attempts", p.cfg.Target, stats.Sent)
			break
		}

		rtt, err := p.SendAndWait(packet)
		if err != nil {
			log.Debugf("attempt %d to %s lost: %s", attempt, p.cfg.Target, err)
			stats.Record(TimeoutResult())
			p.reporter.Timeout()
		} else {
			stats.Record(ReplyResult(rtt))
			p.reporter.Reply(p.cfg.Target, p.cfg.PayloadSize, rtt, p.cfg.TTL)
		}

		if !p.cfg.Continuous && attempt >= p.cfg.Count {
			break
		}
		if err := sleepContext(ctx, p.cfg.Interval); err != nil {
			log.Debugf("ping to %s interrupted: %s", p.cfg.Target, err)
			break
		}
	}

	p.reporter.Summary(p.cfg.Target, stats)
	return stats, nil
}

// SendAndWait sends packet to the target and blocks until something comes back
// or the timeout elapses. Every failure is returned as a *TimeoutError.
func (p *Pinger) SendAndWait(packet []byte) (time.Duration, error) {
	start := p.now()
	if err := p.conn.Send(packet, p.cfg.Target); err != nil {
		return 0, &TimeoutError{Err: fmt.Errorf("send to %s failed: %w", p.cfg.Target, err)}
	}

	if !p.cfg.Strict {
		buf, err := p.conn.Receive(p.cfg.Timeout)
		if err != nil {
			return 0, &TimeoutError{Err: err}
		}
		rtt := p.now().Sub(start)
		log.TraceFunc(func() string {
			return fmt.Sprintf("received %d bytes after %s: %s", len(buf), rtt, p.describe(buf))
		})
		return rtt, nil
	}

	deadline := start.Add(p.cfg.Timeout)
	for {
		remaining := deadline.Sub(p.now())
		if remaining <= 0 {
			return 0, &TimeoutError{Err: os.ErrDeadlineExceeded}
		}
		buf, err := p.conn.Receive(remaining)
		if err != nil {
			return 0, &TimeoutError{Err: err}
		}
		msg, err := packets.ParseEchoReply(buf, p.family)
		if err != nil {
			log.Tracef("ignoring undecodable datagram: %s", err)
			continue
		}
		if !msg.Matches() {
			log.Tracef("ignoring ICMP message that is not our echo reply: %s", msg)
			continue
		}
		return p.now().Sub(start), nil
	}
}

func (p *Pinger) describe(buf []byte) string {
	msg, err := packets.ParseEchoReply(buf, p.family)
	if err != nil {
		return err.Error()
	}
	return msg.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
