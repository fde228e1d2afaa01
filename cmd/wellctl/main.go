// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

// Command wellctl manages the Wellbore database schema.
//
//	wellctl migrate       apply pending migrations
//	wellctl status        show the applied schema version and history
//	wellctl migrations    list the migrations built into this binary
//	wellctl version       print the build version
//
// Connection settings come from the same configuration as the server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
