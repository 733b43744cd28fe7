// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build integration

package integration_tests

import (
	"context"
	"encoding/json"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/datadog-ping/runner"
)

const (
	publicEndpointHostname = "github.com"
	fakeNetworkHostname    = "198.51.100.2"

	testTimeout = 500 * time.Millisecond
)

type testConfig struct {
	name        string
	hostname    string
	wantV6      bool
	count       int
	expectReply bool
}

func requireRoot(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "windows" && os.Geteuid() != 0 {
		t.Skip("raw ICMP sockets need root")
	}
}

func testParams(config testConfig) runner.PingParams {
	params := runner.DefaultPingParams(config.hostname)
	params.Count = config.count
	params.Timeout = testTimeout
	params.Interval = 100 * time.Millisecond
	params.WantV6 = config.wantV6
	params.Strict = true
	return params
}

// testCommon runs a ping with the given configuration and validates the results
func testCommon(t *testing.T, config testConfig) {
	t.Helper()
	requireRoot(t)

	results, err := runner.RunPing(context.Background(), testParams(config), nil)
	require.NoError(t, err)
	require.NotNil(t, results)

	assert.NotEmpty(t, results.TestRunID)
	assert.Equal(t, config.hostname, results.Destination.Hostname)
	assert.NotEmpty(t, results.Destination.IP)
	assert.Equal(t, config.count, results.Probe.PacketsSent)
	assert.Equal(t, results.Probe.PacketsSent, results.Probe.PacketsReceived+results.Probe.PacketsLost)

	if config.expectReply {
		assert.Positive(t, results.Probe.PacketsReceived)
		require.NotNil(t, results.Probe.Rtt)
		assert.LessOrEqual(t, results.Probe.Rtt.Min, results.Probe.Rtt.Avg)
		assert.LessOrEqual(t, results.Probe.Rtt.Avg, results.Probe.Rtt.Max)
	} else {
		assert.Zero(t, results.Probe.PacketsReceived)
		assert.EqualValues(t, 100, results.Probe.PacketLossPercentage)
		assert.Nil(t, results.Probe.Rtt)
	}

	data, err := json.Marshal(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"test_run_id"`)
}

func TestLocalhost(t *testing.T) {
	tests := []testConfig{
		{name: "ipv4", hostname: "127.0.0.1", count: 3, expectReply: true},
		{name: "hostname", hostname: "localhost", count: 2, expectReply: true},
		{name: "ipv6", hostname: "::1", wantV6: true, count: 3, expectReply: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantV6 && runtime.GOOS != "linux" {
				t.Skip("IPv6 tests currently only supported on Linux")
			}
			testCommon(t, tt)
		})
	}
}

func TestPublicEndpoint(t *testing.T) {
	testCommon(t, testConfig{hostname: publicEndpointHostname, count: 3, expectReply: true})
}

// TestFakeNetwork pings a TEST-NET address that never answers
func TestFakeNetwork(t *testing.T) {
	testCommon(t, testConfig{hostname: fakeNetworkHostname, count: 2})
}
