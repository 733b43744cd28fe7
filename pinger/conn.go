// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package pinger

import (
	"net/netip"
	"time"
)

//go:generate mockgen -destination=mock_conn.go -package=pinger github.com/DataDog/datadog-ping/pinger Conn

// Conn is what the Pinger needs from a socket. It is implemented by the raw
// ICMP socket returned from OpenSocket and by test doubles.
type Conn interface {
	// Send writes an ICMP message to dst
	Send(packet []byte, dst netip.Addr) error
	// Receive blocks until a datagram arrives or timeout elapses. The returned
	// slice is only valid until the next call.
	Receive(timeout time.Duration) ([]byte, error)
	// Close releases the socket
	Close() error
}
