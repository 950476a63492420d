package tui

import (
	"strings"

	"github.com/MKhiriev/go-stego-client/internal/controller"
	"github.com/MKhiriev/go-stego-client/models"
)

func renderModal(modal controller.Modal, active models.MediaType) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(modal.Title))
	if modal.Origin != "" && modal.Origin != active {
		b.WriteString(helpStyle.Render("  (" + modal.Origin.Title() + ")"))
	}
	b.WriteString("\n\n")
	b.WriteString(modal.Body)

	hotKeys := []string{"enter / esc close"}
	if modal.Kind == models.ResultExtractSuccess {
		b.WriteString("\n\n")
		b.WriteString(modal.Data)
		hotKeys = append(hotKeys, "c copy")
	}
	if modal.Download.Visible {
		b.WriteString("\n\n")
		b.WriteString("File: " + modal.Download.OriginalName)
		hotKeys = append(hotKeys, "d download")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(strings.Join(hotKeys, "  ")))

	if modal.Kind == models.ResultFailure {
		return failureBoxStyle.Render(b.String())
	}
	return successBoxStyle.Render(b.String())
}

func renderAlert(alert controller.Alert) string {
	return errorOverlayModel{title: "Request failed", message: alert.Message}.View()
}
