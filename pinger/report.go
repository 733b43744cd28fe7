// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package pinger

import (
	"fmt"
	"io"
	"net/netip"
	"time"
)

// Reporter prints the human readable output of a run. A nil Reporter prints nothing.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Start prints the banner, before the target is even resolved
func (r *Reporter) Start(target string, payloadSize int) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "ringing %s with %d bytes of data:\n", target, payloadSize)
}

// Reply prints one answered attempt
func (r *Reporter) Reply(from netip.Addr, payloadSize int, rtt time.Duration, ttl int) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "Reply from %s: bytes=%d time=%dms TTL=%d\n", from, payloadSize, rtt.Milliseconds(), ttl)
}

// Timeout prints one lost attempt
func (r *Reporter) Timeout() {
	if r == nil {
		return
	}
	fmt.Fprintln(r.w, "Request timed out.")
}

// Summary prints the statistics block. Round trip times are only printed when
// at least one reply came back.
func (r *Reporter) Summary(target netip.Addr, s *Statistics) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "\nring statistics for %s:\n", target)
	fmt.Fprintf(r.w, "    Packets: Sent = %d, Received = %d, Lost = %d (%.0f%% loss),\n",
		s.Sent, s.Received, s.Lost(), s.LossPercent())
	if s.Received == 0 {
		return
	}
	fmt.Fprintln(r.w, "Approximate round trip times in milli-seconds:")
	fmt.Fprintf(r.w, "    Minimum = %dms, Maximum = %dms, Average = %dms\n",
		s.MinMillis(), s.MaxMillis(), s.AvgMillis())
}
