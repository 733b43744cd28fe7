// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package packets

import (
	"net/netip"

	"github.com/google/gopacket/layers"
)

// Family is the IP address family an echo request is built for
type Family int

const (
	// FamilyV4 builds ICMPv4 messages
	FamilyV4 Family = iota
	// FamilyV6 builds ICMPv6 messages
	FamilyV6
)

// FamilyOf returns the family of addr. 4-in-6 mapped addresses are treated as IPv4.
func FamilyOf(addr netip.Addr) Family {
	if addr.Unmap().Is4() {
		return FamilyV4
	}
	return FamilyV6
}

// EchoRequestType is the ICMP type value of an echo request for this family
func (f Family) EchoRequestType() uint8 {
	if f == FamilyV6 {
		return layers.ICMPv6TypeEchoRequest
	}
	return layers.ICMPv4TypeEchoRequest
}

// EchoReplyType is the ICMP type value of an echo reply for this family
func (f Family) EchoReplyType() uint8 {
	if f == FamilyV6 {
		return layers.ICMPv6TypeEchoReply
	}
	return layers.ICMPv4TypeEchoReply
}

func (f Family) String() string {
	switch f {
	case FamilyV4:
		return "ipv4"
	case FamilyV6:
		return "ipv6"
	default:
		return "unknown"
	}
}
