// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package logging

import "strings"

const maxLogValueLength = 200

// SanitizeValue strips control characters (log forging) from a request
// derived value and truncates it.
func SanitizeValue(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if len(s) > maxLogValueLength {
		return s[:maxLogValueLength] + "..."
	}
	return s
}
