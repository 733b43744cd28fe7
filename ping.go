// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Command datadog-ping sends ICMP echo requests to a host and reports round trip statistics
package main

import (
	"github.com/DataDog/datadog-ping/cmd"
)

func main() {
	cmd.Execute()
}
