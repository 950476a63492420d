// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DownloadedFile is a processed file fetched from the download endpoint.
type DownloadedFile struct {
	// Name is the file name announced by the server, or the requested
	// restore name when the server announces none.
	Name string

	// ContentType is the media type reported by the server.
	ContentType string

	// Content is the raw file body.
	Content []byte
}

// SavedFile describes a downloaded file written to the local disk.
type SavedFile struct {
	Path string
	Size int64
}
