// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package e2etests contains end-to-end tests for datadog-ping. They build the
// CLI, run it under sudo against real targets and check both the text report
// and the JSON results. Run them with `go test -tags e2etest ./e2etests/...`.
package e2etests
