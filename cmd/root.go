// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DataDog/datadog-ping/log"
	"github.com/DataDog/datadog-ping/metrics"
	"github.com/DataDog/datadog-ping/pinger"
	"github.com/DataDog/datadog-ping/resolver"
	"github.com/DataDog/datadog-ping/runner"
)

const usage = `Usage: datadog-ping <target> [options]
Example: datadog-ping 8.8.8.8 -c 5 -s 64 -w 1000 -ttl 128 -4

Options:
  -c <count>        number of echo requests to send (default 4)
  -s <size>         payload size in bytes (default 56)
  -w <timeout>      time to wait for each reply in milliseconds (default 1000)
  -ttl <ttl>        IPv4 TTL or IPv6 hop limit, 1-255 (default 128)
  -a                add the reverse DNS names of the target to the results
  -t                ping until interrupted
  -4                only use IPv4
  -6                only use IPv6
  -strict           only count echo replies matching our requests
  -json             print the results as JSON
  -prom <file>      write the results as Prometheus metrics to file
  -v                verbose logging
  -log-level <lvl>  error, warn, info, debug or trace
`

var rootCmd = &cobra.Command{
	Use:   "datadog-ping <target> [options]",
	Short: "Send ICMP echo requests to a host",
	Args:  cobra.ArbitraryArgs,
	// -ttl and -log-level are single dash long options, which pflag cannot parse
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		a := parseArgs(argv)
		out := cmd.OutOrStdout()
		if a.help || a.params.Hostname == "" {
			fmt.Fprint(out, usage)
			return nil
		}

		if err := configureLogging(a); err != nil {
			return err
		}

		var reporter *pinger.Reporter
		if !a.jsonOutput {
			reporter = pinger.NewReporter(out)
			reporter.Start(a.params.Hostname, a.params.PayloadSize)
		}

		results, err := runner.RunPing(cmd.Context(), a.params, reporter)
		if err != nil {
			if a.jsonOutput {
				if jsonErr := printJSON(out, runner.ErrorResults(a.params, err)); jsonErr != nil {
					return jsonErr
				}
				return err
			}
			var resErr *resolver.ResolutionError
			if errors.As(err, &resErr) {
				fmt.Fprintf(out, "Invalid target address: %s\n", resErr)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
			}
			return err
		}

		if a.promFile != "" {
			if err := metrics.WriteTextfile(a.promFile, results); err != nil {
				return err
			}
		}
		if a.jsonOutput {
			return printJSON(out, results)
		}
		return nil
	},
}

func configureLogging(a args) error {
	if a.logLevel != "" {
		level, err := log.ParseLogLevel(a.logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	if a.verbose {
		log.SetVerbose(true)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	jsonStr, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshalling failed: %v", err)
	}
	fmt.Fprintln(w, string(jsonStr))
	return nil
}

// Execute runs the root command. SIGINT and SIGTERM cancel the run, which
// ends continuous mode with the usual summary.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
