package service

import (
	"context"

	"github.com/MKhiriev/go-stego-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientStegoService defines the client-side contract for the steganography
// round trip: picking a carrier file, submitting it for processing and
// fetching the processed result.
type ClientStegoService interface {
	// Select resolves path to a carrier file on the local disk.
	// Returns an error if the path does not name a readable regular file.
	Select(path string) (models.SelectedFile, error)

	// Submit streams the carrier file of req to the processing server and
	// returns the decoded answer. cycleID is attached to every log line of
	// the round trip. A non-nil error means no usable answer was received.
	Submit(ctx context.Context, cycleID string, req models.SubmissionRequest) (models.ProcessResponse, error)

	// Download fetches the processed file at location and saves it into the
	// download directory. originalName is used as the file name when the
	// server does not announce one.
	Download(ctx context.Context, location, originalName string) (models.SavedFile, error)
}

// ClientPreviewService defines the contract for turning a selected carrier
// file into something displayable in the terminal.
type ClientPreviewService interface {
	// Decode builds the preview of file for media type m within bounds.
	// Images are decoded into a thumbnail; videos are sniffed for their
	// content type. Returns [ErrPreviewUnsupported] for media types without a
	// decoded preview and a wrapped decode error for unreadable files.
	Decode(ctx context.Context, m models.MediaType, file models.SelectedFile, bounds models.PreviewBounds) (models.DecodedPreview, error)
}

// AppInfoService exposes build and version information of the running client.
type AppInfoService interface {
	// GetAppInfo returns the build information of the running binary.
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
