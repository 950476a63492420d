// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Operation selects what the processing endpoint does with the uploaded file.
// Its string form is the exact value sent in the "operation" multipart field.
type Operation string

const (
	// Hide embeds the secret payload into the carrier file.
	Hide Operation = "hide"

	// Extract recovers a previously embedded payload from the carrier file.
	Extract Operation = "extract"
)

// Operations lists the operations in selector order.
var Operations = []Operation{Hide, Extract}

func (o Operation) String() string {
	return string(o)
}

// Title returns the selector label of the operation.
func (o Operation) Title() string {
	switch o {
	case Hide:
		return "Hide data"
	case Extract:
		return "Extract data"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == Hide || o == Extract
}

// ParseOperation converts s into an [Operation]. Matching is case-insensitive.
func ParseOperation(s string) (Operation, error) {
	o := Operation(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return o, nil
}
