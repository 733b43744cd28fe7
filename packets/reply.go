// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package packets

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// EchoMessage is the decoded header of an ICMP message read from the socket
type EchoMessage struct {
	Type       uint8
	Code       uint8
	Checksum   uint16
	Identifier uint16
	Sequence   uint16
	// TTL is only known when the kernel handed us the IPv4 header too
	TTL     uint8
	IsReply bool
}

// Matches reports whether the message is an echo reply to one of our requests
func (m *EchoMessage) Matches() bool {
	return m.IsReply && m.Identifier == EchoIdentifier && m.Sequence == EchoSequence
}

func (m *EchoMessage) String() string {
	return fmt.Sprintf("type=%d code=%d id=%d seq=%d", m.Type, m.Code, m.Identifier, m.Sequence)
}

// stripIPv4Header removes the IPv4 header some platforms leave in front of raw ICMP reads.
// No ICMP type has 4 in its upper nibble with a valid header length, so the check is unambiguous.
func stripIPv4Header(buf []byte) ([]byte, uint8, error) {
	if len(buf) < 20 || buf[0]>>4 != 4 {
		return buf, 0, nil
	}
	var ip4 layers.IPv4
	err := (&ip4).DecodeFromBytes(buf, gopacket.NilDecodeFeedback)
	if err != nil {
		return nil, 0, fmt.Errorf("stripIPv4Header failed to decode IPv4: %w", err)
	}
	return ip4.Payload, ip4.TTL, nil
}

// ParseEchoReply decodes the ICMP header of buf
func ParseEchoReply(buf []byte, family Family) (*EchoMessage, error) {
	switch family {
	case FamilyV4:
		payload, ttl, err := stripIPv4Header(buf)
		if err != nil {
			return nil, err
		}
		var icmp4 layers.ICMPv4
		if err := (&icmp4).DecodeFromBytes(payload, gopacket.NilDecodeFeedback); err != nil {
			return nil, fmt.Errorf("ParseEchoReply failed to decode ICMPv4: %w", err)
		}
		return &EchoMessage{
			Type:       icmp4.TypeCode.Type(),
			Code:       icmp4.TypeCode.Code(),
			Checksum:   icmp4.Checksum,
			Identifier: icmp4.Id,
			Sequence:   icmp4.Seq,
			TTL:        ttl,
			IsReply:    icmp4.TypeCode.Type() == family.EchoReplyType(),
		}, nil
	case FamilyV6:
		var icmp6 layers.ICMPv6
		if err := (&icmp6).DecodeFromBytes(buf, gopacket.NilDecodeFeedback); err != nil {
			return nil, fmt.Errorf("ParseEchoReply failed to decode ICMPv6: %w", err)
		}
		msg := &EchoMessage{
			Type:     icmp6.TypeCode.Type(),
			Code:     icmp6.TypeCode.Code(),
			Checksum: icmp6.Checksum,
			IsReply:  icmp6.TypeCode.Type() == family.EchoReplyType(),
		}
		if icmp6.TypeCode.Type() != layers.ICMPv6TypeEchoReply && icmp6.TypeCode.Type() != layers.ICMPv6TypeEchoRequest {
			return msg, nil
		}
		var echo layers.ICMPv6Echo
		if err := (&echo).DecodeFromBytes(icmp6.Payload, gopacket.NilDecodeFeedback); err != nil {
			return nil, fmt.Errorf("ParseEchoReply failed to decode ICMPv6 echo: %w", err)
		}
		msg.Identifier = echo.Identifier
		msg.Sequence = echo.SeqNumber
		return msg, nil
	default:
		return nil, fmt.Errorf("unknown address family %d", family)
	}
}
