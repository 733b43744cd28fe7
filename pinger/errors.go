// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package pinger

import (
	"fmt"

	"github.com/DataDog/datadog-ping/packets"
)

// SocketCreationError is returned when the raw socket cannot be opened or configured
type SocketCreationError struct {
	Family packets.Family
	Err    error
}

func (e *SocketCreationError) Error() string {
	msg := fmt.Sprintf("failed to create %s ICMP socket: %s", e.Family, e.Err)
	if e.PermissionDenied() {
		msg += " (" + permissionHint() + ")"
	}
	return msg
}

func (e *SocketCreationError) Unwrap() error {
	return e.Err
}

// PermissionDenied reports whether the platform refused the raw socket to this process
func (e *SocketCreationError) PermissionDenied() bool {
	return isPermissionError(e.Err)
}

// TimeoutError is an attempt that got no reply in time. It also covers send
// and receive failures, which are reported the same way.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %s", e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Timeout implements the net.Error timeout check
func (e *TimeoutError) Timeout() bool {
	return true
}
