// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// MediaType is the category of carrier file a workflow operates on.
// Its string form is the exact value sent in the "fileType" multipart field.
type MediaType string

const (
	// Image carriers (PNG, JPEG, BMP ...). Payload is hidden in pixel LSBs.
	Image MediaType = "image"

	// Audio carriers (WAV). Payload is hidden in frame LSBs.
	Audio MediaType = "audio"

	// Document carriers (PDF, DOCX, TXT). Payload is stored in document metadata.
	Document MediaType = "document"

	// Video carriers (MP4). Payload is hidden in frame pixels.
	Video MediaType = "video"
)

// MediaTypes lists every supported media type in tab order.
var MediaTypes = []MediaType{Image, Audio, Document, Video}

// String implements fmt.Stringer.
func (m MediaType) String() string {
	return string(m)
}

// Title returns the human readable tab label of the media type.
func (m MediaType) Title() string {
	switch m {
	case Image:
		return "Image"
	case Audio:
		return "Audio"
	case Document:
		return "Document"
	case Video:
		return "Video"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the supported media types.
func (m MediaType) Valid() bool {
	switch m {
	case Image, Audio, Document, Video:
		return true
	default:
		return false
	}
}

// ParseMediaType converts s into a [MediaType]. Matching is case-insensitive.
func ParseMediaType(s string) (MediaType, error) {
	m := MediaType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMediaType, s)
	}
	return m, nil
}
