// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build linux || darwin

package pinger

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func isPermissionError(err error) bool {
	return errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES)
}

func permissionHint() string {
	if unix.Geteuid() == 0 {
		return "raw sockets are denied even to root here"
	}
	return fmt.Sprintf("running as uid %d; raw ICMP sockets need root or CAP_NET_RAW", unix.Geteuid())
}
