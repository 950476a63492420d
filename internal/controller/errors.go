// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "errors"

var (
	// ErrUnknownWorkflow is returned for a media type the page has no session for.
	ErrUnknownWorkflow = errors.New("unknown workflow")
	// ErrTabOutOfRange is returned when activating a tab index that does not exist.
	ErrTabOutOfRange = errors.New("tab index out of range")
	// ErrSubmitInFlight is returned when the submit control is already busy.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrNoFileSelected is returned when submitting without a selected file.
	ErrNoFileSelected = errors.New("no file selected")
	// ErrNoOperation is returned when no operation is selected at submit time.
	ErrNoOperation = errors.New("no operation selected")
)

// User-facing texts rendered by the controllers.
const (
	TitleError         = "Error"
	TitleSuccess       = "Success"
	TitleExtractedData = "Extracted Data"

	MsgNoFileSelected        = "No file selected"
	MsgUnrecognizedResponse  = "Unexpected response from the processing server"
	MsgHideSucceeded         = "Data hidden successfully!"
	MsgDownloadReady         = "Your file is ready to download."
	MsgExtractSucceeded      = "Data extracted successfully!"
	SubmitLabelProcessing    = "Processing..."
	transportAlertPrefix     = "Error: "
	previewUnavailablePrefix = "Preview unavailable: "
)
