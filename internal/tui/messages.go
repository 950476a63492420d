package tui

import (
	"github.com/MKhiriev/go-stego-client/internal/controller"
	"github.com/MKhiriev/go-stego-client/models"
)

type previewDecodedMsg struct {
	task    controller.PreviewTask
	decoded models.DecodedPreview
	err     error
}

type submitDoneMsg struct {
	cycle *controller.Cycle
	resp  models.ProcessResponse
	err   error
}

type downloadDueMsg struct {
	effect controller.Effect
}

type downloadDoneMsg struct {
	effect controller.Effect
	saved  models.SavedFile
	err    error
}

type failedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
