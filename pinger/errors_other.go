// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build !linux && !darwin

package pinger

import (
	"errors"
	"os"
)

func isPermissionError(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

func permissionHint() string {
	return "raw ICMP sockets need administrator rights"
}
