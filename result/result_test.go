package result

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProbe(t *testing.T) {
	tests := []struct {
		name     string
		stats    ProbeStats
		expected Probe
	}{
		{
			name: "replies and a loss",
			stats: ProbeStats{
				Sent:     4,
				Received: 3,
				Rtts:     []time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond},
				MinRtt:   10 * time.Millisecond,
				MaxRtt:   30 * time.Millisecond,
				TotalRtt: 60 * time.Millisecond,
				Jitter:   15 * time.Millisecond,
			},
			expected: Probe{
				Rtts:                 []float64{10, 30, 20},
				PacketsSent:          4,
				PacketsReceived:      3,
				PacketsLost:          1,
				PacketLossPercentage: 25,
				Jitter:               15,
				Rtt:                  &ProbeRtt{Avg: 20, Min: 10, Max: 30},
			},
		},
		{
			name:  "everything lost",
			stats: ProbeStats{Sent: 2},
			expected: Probe{
				Rtts:                 []float64{},
				PacketsSent:          2,
				PacketsLost:          2,
				PacketLossPercentage: 100,
			},
		},
		{
			name: "latency covers replies missing from rtts",
			stats: ProbeStats{
				Sent:     5,
				Received: 4,
				Rtts:     []time.Duration{20 * time.Millisecond, 40 * time.Millisecond},
				MinRtt:   10 * time.Millisecond,
				MaxRtt:   40 * time.Millisecond,
				TotalRtt: 100 * time.Millisecond,
			},
			expected: Probe{
				Rtts:                 []float64{20, 40},
				PacketsSent:          5,
				PacketsReceived:      4,
				PacketsLost:          1,
				PacketLossPercentage: 20,
				Rtt:                  &ProbeRtt{Avg: 25, Min: 10, Max: 40},
			},
		},
		{
			name: "nothing sent",
			expected: Probe{
				Rtts: []float64{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Params{Hostname: "example.com"})
			r.SetProbe(tt.stats)
			assert.Equal(t, tt.expected, r.Probe)
		})
	}
}

func TestResultsJSON(t *testing.T) {
	r := New(Params{Hostname: "localhost", Count: 1, PayloadSize: 56, TimeoutMs: 1000, TTL: 128})
	r.Destination = Destination{Hostname: "localhost", IP: "127.0.0.1"}
	rtt := 1500 * time.Microsecond
	r.SetProbe(ProbeStats{Sent: 1, Received: 1, Rtts: []time.Duration{rtt}, MinRtt: rtt, MaxRtt: rtt, TotalRtt: rtt})

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, r.TestRunID, decoded["test_run_id"])
	assert.NotContains(t, decoded, "error")

	probe := decoded["probe"].(map[string]any)
	assert.Equal(t, []any{1.5}, probe["rtts"])
	assert.Equal(t, map[string]any{"avg": 1.5, "min": 1.5, "max": 1.5}, probe["latency"])
}
