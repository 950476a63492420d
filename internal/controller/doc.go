// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller implements the submission-and-result orchestration of
// the stego client independently of any UI toolkit.
//
// The interactive surface is modelled by [Page], an explicit view-model that
// holds one [WorkflowSession] per media type, the shared result [Modal] and
// the blocking [Alert]. Small controllers ([TabController],
// [FilePreviewBinder], [OperationModeToggle], [EncryptionToggle],
// [SubmissionController], [ResultRenderer]) mutate the page and return
// explicit work items (preview decode tasks, submission cycles, delayed
// download effects) that the presentation layer executes asynchronously and
// feeds back. All methods must be called from a single goroutine, the UI
// loop; nothing in this package locks.
package controller
