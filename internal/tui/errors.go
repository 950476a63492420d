// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

const msgServerUnavailable = "Network unavailable or processing server unreachable"

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// humanizeTransportError prefixes unreachable-server errors with a readable
// summary. The underlying error stays in the chain and in the message.
func humanizeTransportError(err error) error {
	if err == nil || !isServerUnavailable(err) {
		return err
	}
	return fmt.Errorf("%s: %w", msgServerUnavailable, err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	return humanizeTransportError(err).Error()
}
