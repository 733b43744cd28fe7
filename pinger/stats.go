// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package pinger

import (
	"math"
	"time"
)

// AttemptResult is the outcome of one echo request
type AttemptResult struct {
	RTT      time.Duration
	TimedOut bool
}

// ReplyResult is an attempt answered after rtt
func ReplyResult(rtt time.Duration) AttemptResult {
	return AttemptResult{RTT: rtt}
}

// TimeoutResult is an attempt that got no answer
func TimeoutResult() AttemptResult {
	return AttemptResult{TimedOut: true}
}

// MaxRetainedRtts bounds Rtts so a continuous run does not grow forever
const MaxRetainedRtts = 1000

// Statistics accumulates the attempts of a run
type Statistics struct {
	Sent     int
	Received int
	MinRtt   time.Duration
	MaxRtt   time.Duration
	TotalRtt time.Duration
	// Rtts holds the round trip times of the last MaxRetainedRtts replies, in
	// order. It is only kept for the results document; the aggregates above
	// cover every reply.
	Rtts []time.Duration

	lastRtt   time.Duration
	jitterSum time.Duration
}

// NewStatistics returns empty statistics. MinRtt starts at the largest duration
// so the first reply always replaces it.
func NewStatistics() *Statistics {
	return &Statistics{
		MinRtt: time.Duration(math.MaxInt64),
	}
}

// Record folds one attempt into the statistics
func (s *Statistics) Record(r AttemptResult) {
	s.Sent++
	if r.TimedOut {
		return
	}
	s.Received++
	s.TotalRtt += r.RTT
	s.MinRtt = min(s.MinRtt, r.RTT)
	s.MaxRtt = max(s.MaxRtt, r.RTT)
	if s.Received > 1 {
		s.jitterSum += (r.RTT - s.lastRtt).Abs()
	}
	s.lastRtt = r.RTT

	if len(s.Rtts) == MaxRetainedRtts {
		copy(s.Rtts, s.Rtts[1:])
		s.Rtts = s.Rtts[:MaxRetainedRtts-1]
	}
	s.Rtts = append(s.Rtts, r.RTT)
}

// Lost is the number of attempts without a reply
func (s *Statistics) Lost() int {
	return s.Sent - s.Received
}

// LossPercent is 100*lost/sent, or 0 when nothing was sent
func (s *Statistics) LossPercent() float64 {
	if s.Sent == 0 {
		return 0
	}
	return 100 * float64(s.Lost()) / float64(s.Sent)
}

// MinMillis is the fastest reply in whole milliseconds, 0 without replies
func (s *Statistics) MinMillis() int64 {
	if s.Received == 0 {
		return 0
	}
	return s.MinRtt.Milliseconds()
}

// MaxMillis is the slowest reply in whole milliseconds
func (s *Statistics) MaxMillis() int64 {
	return s.MaxRtt.Milliseconds()
}

// AvgMillis is the total round trip time in whole milliseconds divided by the
// number of replies, using integer division
func (s *Statistics) AvgMillis() int64 {
	if s.Received == 0 {
		return 0
	}
	return s.TotalRtt.Milliseconds() / int64(s.Received)
}

// Jitter is the mean absolute difference between consecutive round trip times
func (s *Statistics) Jitter() time.Duration {
	if s.Received < 2 {
		return 0
	}
	return s.jitterSum / time.Duration(s.Received-1)
}
