// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package runner

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/DataDog/datadog-ping/pinger"
	"github.com/DataDog/datadog-ping/resolver"
)

// ErrorCode represents a classifiable error code
type ErrorCode string

const (
	// ErrCodeDNS indicates a DNS resolution failure.
	ErrCodeDNS ErrorCode = "DNS"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeHostUnreach indicates the target host is unreachable.
	ErrCodeHostUnreach ErrorCode = "HOSTUNREACH"
	// ErrCodeNetUnreach indicates the target network is unreachable.
	ErrCodeNetUnreach ErrorCode = "NETUNREACH"
	// ErrCodeDenied indicates the raw socket was refused to this process.
	ErrCodeDenied ErrorCode = "DENIED"
	// ErrCodeInvalidRequest indicates bad parameters from the caller.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeUnknown is the catch-all for unclassified errors.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

// PingError is a classified error from a ping run.
type PingError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *PingError) Error() string {
	return e.Message
}

func (e *PingError) Unwrap() error {
	return e.Err
}

// InvalidParamsError is returned for parameters a run cannot start with
type InvalidParamsError struct {
	Err error
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", e.Err)
}

func (e *InvalidParamsError) Unwrap() error {
	return e.Err
}

// ClassifyError inspects an error chain and returns a PingError with the appropriate code.
func ClassifyError(err error) *PingError {
	if err == nil {
		return nil
	}

	var resolutionErr *resolver.ResolutionError
	if errors.As(err, &resolutionErr) {
		var netDNSErr *net.DNSError
		if errors.As(err, &netDNSErr) && netDNSErr.IsTimeout {
			return &PingError{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
		}
		return &PingError{Code: ErrCodeDNS, Message: err.Error(), Err: err}
	}

	var invalidParamsErr *InvalidParamsError
	if errors.As(err, &invalidParamsErr) {
		return &PingError{Code: ErrCodeInvalidRequest, Message: err.Error(), Err: err}
	}

	var socketErr *pinger.SocketCreationError
	if errors.As(err, &socketErr) && socketErr.PermissionDenied() {
		return &PingError{Code: ErrCodeDenied, Message: err.Error(), Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &PingError{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classifySyscallError(errno, err)
	}

	return &PingError{Code: ErrCodeUnknown, Message: err.Error(), Err: err}
}

func classifySyscallError(errno syscall.Errno, original error) *PingError {
	switch errno {
	case syscall.EHOSTUNREACH:
		return &PingError{Code: ErrCodeHostUnreach, Message: original.Error(), Err: original}
	case syscall.ENETUNREACH:
		return &PingError{Code: ErrCodeNetUnreach, Message: original.Error(), Err: original}
	case syscall.EACCES, syscall.EPERM:
		return &PingError{Code: ErrCodeDenied, Message: original.Error(), Err: original}
	case syscall.ETIMEDOUT:
		return &PingError{Code: ErrCodeTimeout, Message: original.Error(), Err: original}
	default:
		return &PingError{Code: ErrCodeUnknown, Message: original.Error(), Err: original}
	}
}
