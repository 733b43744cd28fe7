// Package result holds the machine readable summary of a ping run
package result

import (
	"time"
)

type (
	// Results is the JSON document printed for a run
	Results struct {
		TestRunID   string      `json:"test_run_id"`
		Params      Params      `json:"params"`
		Destination Destination `json:"destination"`
		Probe       Probe       `json:"probe"`
		Error       *Error      `json:"error,omitempty"`
	}

	// Params echoes the parameters the run was started with
	Params struct {
		Hostname    string `json:"hostname"`
		Count       int    `json:"count"`
		PayloadSize int    `json:"payload_size"`
		TimeoutMs   int64  `json:"timeout_ms"`
		TTL         int    `json:"ttl"`
		Continuous  bool   `json:"continuous"`
		Strict      bool   `json:"strict"`
	}

	// Destination is the address that was actually pinged
	Destination struct {
		Hostname   string   `json:"hostname"`
		IP         string   `json:"ip"`
		ReverseDns []string `json:"reverse_dns,omitempty"`
	}

	// Probe contains the packet and latency statistics, times in milliseconds
	Probe struct {
		Rtts                 []float64 `json:"rtts"`
		PacketsSent          int       `json:"packets_sent"`
		PacketsReceived      int       `json:"packets_received"`
		PacketsLost          int       `json:"packets_lost"`
		PacketLossPercentage float32   `json:"packet_loss_percentage"`
		Jitter               float64   `json:"jitter"`
		Rtt                  *ProbeRtt `json:"latency,omitempty"`
	}

	ProbeRtt struct {
		Avg float64 `json:"avg"`
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}

	// Error is set instead of Probe when the run could not start
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
)

// New returns Results for params with a fresh test run ID
func New(params Params) *Results {
	return &Results{
		TestRunID: newBase64UUID(),
		Params:    params,
		Probe:     Probe{Rtts: []float64{}},
	}
}

// ProbeStats are the aggregates of a run. Rtts may only hold the most recent
// replies; counters and latency cover all of them.
type ProbeStats struct {
	Sent     int
	Received int
	Rtts     []time.Duration
	MinRtt   time.Duration
	MaxRtt   time.Duration
	TotalRtt time.Duration
	Jitter   time.Duration
}

// SetProbe fills the probe statistics. Latency is left empty when nothing came back.
func (r *Results) SetProbe(s ProbeStats) {
	r.Probe = Probe{
		Rtts:            millisList(s.Rtts),
		PacketsSent:     s.Sent,
		PacketsReceived: s.Received,
		PacketsLost:     s.Sent - s.Received,
		Jitter:          millis(s.Jitter),
	}
	if s.Sent > 0 {
		r.Probe.PacketLossPercentage = float32(s.Sent-s.Received) / float32(s.Sent) * 100
	}
	if s.Received == 0 {
		return
	}
	r.Probe.Rtt = &ProbeRtt{
		Avg: millis(s.TotalRtt) / float64(s.Received),
		Min: millis(s.MinRtt),
		Max: millis(s.MaxRtt),
	}
}
