// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package metrics exposes the results of a ping run as Prometheus gauges,
// written in the textfile collector format
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DataDog/datadog-ping/result"
)

var (
	labels = []string{"target", "ip"}

	descSent = prometheus.NewDesc(
		"datadog_ping_packets_sent",
		"Echo requests sent during the run",
		labels, nil,
	)
	descReceived = prometheus.NewDesc(
		"datadog_ping_packets_received",
		"Replies received during the run",
		labels, nil,
	)
	descLoss = prometheus.NewDesc(
		"datadog_ping_packet_loss_ratio",
		"Share of echo requests left unanswered, between 0 and 1",
		labels, nil,
	)
	descLatency = prometheus.NewDesc(
		"datadog_ping_latency_milliseconds",
		"Round trip time of the run",
		append(labels, "stat"), nil,
	)
	descJitter = prometheus.NewDesc(
		"datadog_ping_jitter_milliseconds",
		"Mean difference between consecutive round trip times",
		labels, nil,
	)
)

// Collector reports a single finished run
type Collector struct {
	results *result.Results
}

var _ prometheus.Collector = &Collector{}

// NewCollector creates a Collector for results
func NewCollector(results *result.Results) *Collector {
	return &Collector{results: results}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	probe := c.results.Probe
	lv := []string{c.results.Destination.Hostname, c.results.Destination.IP}

	ch <- prometheus.MustNewConstMetric(descSent, prometheus.GaugeValue, float64(probe.PacketsSent), lv...)
	ch <- prometheus.MustNewConstMetric(descReceived, prometheus.GaugeValue, float64(probe.PacketsReceived), lv...)
	ch <- prometheus.MustNewConstMetric(descLoss, prometheus.GaugeValue, float64(probe.PacketLossPercentage)/100, lv...)
	ch <- prometheus.MustNewConstMetric(descJitter, prometheus.GaugeValue, probe.Jitter, lv...)

	// no latency without replies
	if probe.Rtt == nil {
		return
	}
	for stat, v := range map[string]float64{"min": probe.Rtt.Min, "max": probe.Rtt.Max, "avg": probe.Rtt.Avg} {
		ch <- prometheus.MustNewConstMetric(descLatency, prometheus.GaugeValue, v, append(lv, stat)...)
	}
}

// WriteTextfile writes the metrics of results to path, atomically
func WriteTextfile(path string, results *result.Results) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(results)); err != nil {
		return fmt.Errorf("failed to register collector: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
