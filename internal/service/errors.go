package service

import "errors"

var (
	ErrPreviewUnsupported = errors.New("no preview for this media type")
	ErrNotAVideo          = errors.New("file is not a recognised video")

	ErrProcessedFileNotFound = errors.New("processed file is no longer available on the server")

	// ErrSubmissionRejected marks a submission that failed on this machine
	// before any request was sent.
	ErrSubmissionRejected = errors.New("submission rejected before sending")
)
