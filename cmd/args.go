// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/DataDog/datadog-ping/log"
	"github.com/DataDog/datadog-ping/pinger"
	"github.com/DataDog/datadog-ping/runner"
)

type args struct {
	params     runner.PingParams
	jsonOutput bool
	verbose    bool
	logLevel   string
	promFile   string
	help       bool
}

// options taking a value; the value is the next argument
var valueOptions = map[string]bool{
	"c":         true,
	"s":         true,
	"w":         true,
	"ttl":       true,
	"log-level": true,
	"prom":      true,
}

// parseArgs scans the command line ping style: single dash options that may be
// longer than one letter, in any order around the target. Numeric values that
// do not parse or are out of range fall back to their default.
func parseArgs(argv []string) args {
	a := args{params: runner.DefaultPingParams("")}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			if a.params.Hostname == "" {
				a.params.Hostname = arg
			} else {
				log.Debugf("ignoring extra argument %q", arg)
			}
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if valueOptions[name] {
			if i+1 >= len(argv) {
				log.Debugf("option %s has no value, using default", arg)
				continue
			}
			i++
			a.setValue(name, argv[i])
			continue
		}

		switch name {
		case "a":
			a.params.ReverseDns = true
		case "t":
			a.params.Continuous = true
		case "4":
			a.params.WantV4 = true
		case "6":
			a.params.WantV6 = true
		case "strict":
			a.params.Strict = true
		case "json":
			a.jsonOutput = true
		case "v":
			a.verbose = true
		case "h", "help":
			a.help = true
		default:
			log.Debugf("ignoring unknown option %q", arg)
		}
	}
	return a
}

func (a *args) setValue(name, value string) {
	switch name {
	case "log-level":
		a.logLevel = value
		return
	case "prom":
		a.promFile = value
		return
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Debugf("invalid value %q for -%s, using default", value, name)
		return
	}

	switch name {
	case "c":
		a.params.Count = n
	case "s":
		if n < 0 {
			log.Debugf("payload size %d is negative, using default", n)
			return
		}
		a.params.PayloadSize = n
	case "w":
		if n <= 0 {
			log.Debugf("timeout %d is not positive, using default", n)
			return
		}
		a.params.Timeout = time.Duration(n) * time.Millisecond
	case "ttl":
		if n < pinger.MinTTL || n > pinger.MaxTTL {
			log.Debugf("ttl %d out of range, using default", n)
			return
		}
		a.params.TTL = n
	}
}
