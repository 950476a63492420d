// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/store"
	"github.com/MKhiriev/go-stego-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
)

const (
	sniffLen = 512

	defaultPreviewWidth  = 32
	defaultPreviewHeight = 12

	halfBlock = "▀"
)

type clientPreviewService struct {
	carriers store.CarrierFileStorage

	logger *logger.Logger
}

// NewClientPreviewService creates a [ClientPreviewService] reading files
// through carriers.
func NewClientPreviewService(carriers store.CarrierFileStorage, logger *logger.Logger) ClientPreviewService {
	return &clientPreviewService{carriers: carriers, logger: logger}
}

func (s *clientPreviewService) Decode(ctx context.Context, m models.MediaType, file models.SelectedFile, bounds models.PreviewBounds) (models.DecodedPreview, error) {
	switch m {
	case models.Image:
		return s.decodeImage(ctx, file, bounds)
	case models.Video:
		return s.sniffVideo(ctx, file)
	default:
		return models.DecodedPreview{}, fmt.Errorf("%w: %s", ErrPreviewUnsupported, m)
	}
}

func (s *clientPreviewService) decodeImage(ctx context.Context, file models.SelectedFile, bounds models.PreviewBounds) (models.DecodedPreview, error) {
	rc, err := s.carriers.Open(ctx, file)
	if err != nil {
		return models.DecodedPreview{}, err
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, sniffLen)
	head, _ := br.Peek(sniffLen)
	mime := http.DetectContentType(head)

	img, err := imaging.Decode(br, imaging.AutoOrientation(true))
	if err != nil {
		return models.DecodedPreview{}, fmt.Errorf("decode image: %w", err)
	}

	if bounds.Width <= 0 {
		bounds.Width = defaultPreviewWidth
	}
	if bounds.Height <= 0 {
		bounds.Height = defaultPreviewHeight
	}

	// Each terminal cell shows two vertically stacked pixels.
	thumb := imaging.Fit(img, bounds.Width, bounds.Height*2, imaging.Lanczos)

	size := img.Bounds().Size()
	s.logger.Debug().
		Str("file", file.Name).
		Str("mime", mime).
		Int("width", size.X).
		Int("height", size.Y).
		Msg("image preview decoded")

	return models.DecodedPreview{
		Render:   renderHalfBlocks(thumb),
		MIMEType: mime,
		Size:     file.Size,
		Width:    size.X,
		Height:   size.Y,
	}, nil
}

func (s *clientPreviewService) sniffVideo(ctx context.Context, file models.SelectedFile) (models.DecodedPreview, error) {
	rc, err := s.carriers.Open(ctx, file)
	if err != nil {
		return models.DecodedPreview{}, err
	}
	defer rc.Close()

	head, err := bufio.NewReaderSize(rc, sniffLen).Peek(sniffLen)
	if len(head) == 0 {
		return models.DecodedPreview{}, fmt.Errorf("read video header: %w", err)
	}

	mime := http.DetectContentType(head)
	if !strings.HasPrefix(mime, "video/") {
		return models.DecodedPreview{}, fmt.Errorf("%w: detected %s", ErrNotAVideo, mime)
	}

	return models.DecodedPreview{
		Render:   fmt.Sprintf("▶ %s · %s · %s", file.Name, mime, humanize.IBytes(uint64(file.Size))),
		MIMEType: mime,
		Size:     file.Size,
	}, nil
}

// renderHalfBlocks draws img with upper half blocks: the foreground colour
// is the upper pixel and the background colour the lower one.
func renderHalfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

func hexColor(c color.Color) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
}
