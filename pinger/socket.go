// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package pinger

import (
	"fmt"
	"net"
	"net/netip"
	"sync"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"github.com/DataDog/datadog-ping/log"
	"github.com/DataDog/datadog-ping/packets"
)

// maxDatagramSize fits any IPv4 or IPv6 datagram the kernel can hand us
const maxDatagramSize = 65535

// socketConn is a raw ICMP socket. The read and write timeouts are applied as
// deadlines before every operation.
type socketConn struct {
	closeOnce sync.Once
	conn      *icmp.PacketConn
	family    packets.Family
	timeout   time.Duration
	buffer    []byte
}

var _ Conn = &socketConn{}

// OpenSocket opens a raw ICMP socket for family with the given TTL (hop limit
// for IPv6) and send timeout. Raw sockets usually need root or CAP_NET_RAW.
func OpenSocket(family packets.Family, ttl int, timeout time.Duration) (Conn, error) {
	network, address := "ip4:icmp", "0.0.0.0"
	if family == packets.FamilyV6 {
		network, address = "ip6:ipv6-icmp", "::"
	}

	conn, err := icmp.ListenPacket(network, address)
	if err != nil {
		return nil, &SocketCreationError{Family: family, Err: err}
	}

	switch family {
	case packets.FamilyV6:
		err = setHopLimit(conn.IPv6PacketConn(), ttl)
	default:
		err = setTTL(conn.IPv4PacketConn(), ttl)
	}
	if err != nil {
		conn.Close()
		return nil, &SocketCreationError{Family: family, Err: err}
	}

	log.Debugf("opened %s socket (ttl=%d, timeout=%s)", network, ttl, timeout)
	return &socketConn{
		conn:    conn,
		family:  family,
		timeout: timeout,
		buffer:  make([]byte, maxDatagramSize),
	}, nil
}

func setTTL(p *ipv4.PacketConn, ttl int) error {
	if p == nil {
		return fmt.Errorf("socket is not an IPv4 socket")
	}
	if err := p.SetTTL(ttl); err != nil {
		return fmt.Errorf("failed to set TTL %d: %w", ttl, err)
	}
	if err := p.SetMulticastTTL(ttl); err != nil {
		return fmt.Errorf("failed to set multicast TTL %d: %w", ttl, err)
	}
	return nil
}

func setHopLimit(p *ipv6.PacketConn, hopLimit int) error {
	if p == nil {
		return fmt.Errorf("socket is not an IPv6 socket")
	}
	if err := p.SetHopLimit(hopLimit); err != nil {
		return fmt.Errorf("failed to set hop limit %d: %w", hopLimit, err)
	}
	if err := p.SetMulticastHopLimit(hopLimit); err != nil {
		return fmt.Errorf("failed to set multicast hop limit %d: %w", hopLimit, err)
	}
	return nil
}

// Send writes packet to dst. The kernel fills in the ICMPv6 checksum itself.
func (s *socketConn) Send(packet []byte, dst netip.Addr) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.timeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	addr := &net.IPAddr{IP: dst.AsSlice(), Zone: dst.Zone()}
	n, err := s.conn.WriteTo(packet, addr)
	if err != nil {
		return err
	}
	if n != len(packet) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(packet))
	}
	return nil
}

// Receive reads the next datagram, whatever it is
func (s *socketConn) Receive(timeout time.Duration) ([]byte, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}
	n, peer, err := s.conn.ReadFrom(s.buffer)
	if err != nil {
		return nil, err
	}
	log.Tracef("read %d bytes from %s", n, peer)
	return s.buffer[:n], nil
}

func (s *socketConn) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.conn.Close()
	})
	return err
}
