// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package packets builds ICMP echo requests and decodes the messages received
// back on a raw ICMP socket
package packets

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/DataDog/datadog-ping/log"
)

const (
	// HeaderSize is the size of an ICMP echo header
	HeaderSize = 8

	// EchoIdentifier is the identifier of every request. Only one request is
	// ever outstanding, so a constant value is enough to tell replies apart.
	EchoIdentifier uint16 = 1
	// EchoSequence is the sequence number of every request
	EchoSequence uint16 = 1
)

var (
	fillerMu sync.Mutex
	filler   io.Reader = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// defaultFill fills buf from the package-level math/rand source, which is not
// safe for concurrent use on its own.
func defaultFill(buf []byte) error {
	fillerMu.Lock()
	defer fillerMu.Unlock()
	_, err := io.ReadFull(filler, buf)
	return err
}

// BuildEchoRequest returns an echo request of HeaderSize+payloadSize bytes with
// a valid checksum. The payload is filled from src, or from a pseudo random
// source when src is nil; its content is never checked on receipt.
func BuildEchoRequest(payloadSize int, family Family, src io.Reader) ([]byte, error) {
	if payloadSize < 0 {
		return nil, fmt.Errorf("invalid payload size %d", payloadSize)
	}

	packet := make([]byte, HeaderSize+payloadSize)
	packet[0] = family.EchoRequestType()
	packet[1] = 0 // code
	binary.BigEndian.PutUint16(packet[4:6], EchoIdentifier)
	binary.BigEndian.PutUint16(packet[6:8], EchoSequence)

	var err error
	if src == nil {
		err = defaultFill(packet[HeaderSize:])
	} else {
		_, err = io.ReadFull(src, packet[HeaderSize:])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fill echo payload: %w", err)
	}

	SetChecksum(packet)

	log.Tracef("built %s echo request: %d bytes, checksum=%#04x", family, len(packet), binary.BigEndian.Uint16(packet[2:4]))
	return packet, nil
}

// SetChecksum zeroes bytes 2-3 of an ICMP message, then writes its checksum there.
// It must be called again after any change to the message.
func SetChecksum(packet []byte) {
	if len(packet) < 4 {
		return
	}
	packet[2] = 0
	packet[3] = 0
	binary.BigEndian.PutUint16(packet[2:4], Checksum(packet))
}
