// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strings"
)

// Multipart field names understood by the processing endpoint.
const (
	FieldFile       = "file"
	FieldFileType   = "fileType"
	FieldOperation  = "operation"
	FieldSecretData = "secretData"
	FieldPassword   = "password"
)

// SelectedFile references a user-chosen carrier file on the local disk.
type SelectedFile struct {
	// Path is the location of the file on disk.
	Path string

	// Name is the base name sent as the multipart file name.
	Name string

	// Size is the file size in bytes at selection time.
	Size int64
}

// SubmissionRequest is the outbound request of one submit cycle.
//
// SecretData and Password are pointers: a nil value means the field is
// omitted from the request entirely, which is different from sending an
// empty string.
type SubmissionRequest struct {
	File      SelectedFile
	FileType  MediaType
	Operation Operation

	// SecretData is present iff Operation is [Hide].
	SecretData *string

	// Password is present iff encryption was enabled for the workflow.
	Password *string
}

// FormFields returns the non-file multipart fields of the request.
// Omitted optional fields have no key in the returned map.
func (r SubmissionRequest) FormFields() map[string]string {
	fields := map[string]string{
		FieldFileType:  r.FileType.String(),
		FieldOperation: r.Operation.String(),
	}
	if r.SecretData != nil {
		fields[FieldSecretData] = *r.SecretData
	}
	if r.Password != nil {
		fields[FieldPassword] = *r.Password
	}
	return fields
}

// ProcessResponse is the JSON body returned by the processing endpoint.
// Every field is optional; pointers keep "absent" distinguishable from "empty".
type ProcessResponse struct {
	Error        *string `json:"error,omitempty"`
	Success      bool    `json:"success,omitempty"`
	Filename     *string `json:"filename,omitempty"`
	OriginalName *string `json:"original_name,omitempty"`
	Data         *string `json:"data,omitempty"`
}

// ResultKind tags the variant held by a [SubmissionResult].
type ResultKind int

const (
	// ResultFailure carries an error message.
	ResultFailure ResultKind = iota + 1

	// ResultHideSuccess carries the processed file name and its restore name.
	ResultHideSuccess

	// ResultExtractSuccess carries the extracted plaintext.
	ResultExtractSuccess
)

func (k ResultKind) String() string {
	switch k {
	case ResultFailure:
		return "failure"
	case ResultHideSuccess:
		return "hide_success"
	case ResultExtractSuccess:
		return "extract_success"
	default:
		return "unknown"
	}
}

// SubmissionResult is the interpreted outcome of one submit cycle.
// Only the fields belonging to Kind are meaningful.
type SubmissionResult struct {
	Kind ResultKind

	// Message is set for ResultFailure.
	Message string

	// Filename and OriginalName are set for ResultHideSuccess.
	Filename     string
	OriginalName string

	// Data is set for ResultExtractSuccess.
	Data string
}

// NewFailure builds a ResultFailure.
func NewFailure(message string) SubmissionResult {
	return SubmissionResult{Kind: ResultFailure, Message: message}
}

// NewHideSuccess builds a ResultHideSuccess.
func NewHideSuccess(filename, originalName string) SubmissionResult {
	return SubmissionResult{Kind: ResultHideSuccess, Filename: filename, OriginalName: originalName}
}

// NewExtractSuccess builds a ResultExtractSuccess.
func NewExtractSuccess(data string) SubmissionResult {
	return SubmissionResult{Kind: ResultExtractSuccess, Data: data}
}

// DownloadLocation derives the download endpoint location of a processed
// file: "<prefix>/<filename>?original=<originalName>". Both parts are
// escaped, so the result is safe to resolve against the endpoint base URL.
func DownloadLocation(prefix, filename, originalName string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(prefix, "/"))
	b.WriteString("/")
	b.WriteString(url.PathEscape(filename))
	b.WriteString("?original=")
	b.WriteString(url.QueryEscape(originalName))
	return b.String()
}
