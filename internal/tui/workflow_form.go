package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stego-client/internal/controller"
	"github.com/MKhiriev/go-stego-client/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldFile formField = iota
	fieldSecret
	fieldPassword
)

// workflowForm holds the input widgets of one workflow tab. The values the
// controller needs are copied into the session after every edit.
type workflowForm struct {
	file     textinput.Model
	secret   textarea.Model
	password textinput.Model
	focus    formField
}

func newWorkflowForm(m models.MediaType) workflowForm {
	file := textinput.New()
	file.Placeholder = "path to " + strings.ToLower(m.Title()) + " file, enter to select"
	file.Width = 50
	file.Prompt = ""
	file.Focus()

	secret := textarea.New()
	secret.Placeholder = "secret data to hide"
	secret.ShowLineNumbers = false
	secret.SetWidth(50)
	secret.SetHeight(3)

	password := textinput.New()
	password.Placeholder = "encryption password"
	password.Width = 50
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return workflowForm{file: file, secret: secret, password: password}
}

// fields returns the inputs that are currently shown for s in focus order.
func (f workflowForm) fields(s *controller.WorkflowSession) []formField {
	out := []formField{fieldFile}
	if s.SecretDataVisible {
		out = append(out, fieldSecret)
	}
	if s.PasswordVisible {
		out = append(out, fieldPassword)
	}
	return out
}

func (f workflowForm) focusField(fd formField) workflowForm {
	f.file.Blur()
	f.secret.Blur()
	f.password.Blur()

	f.focus = fd
	switch fd {
	case fieldSecret:
		f.secret.Focus()
	case fieldPassword:
		f.password.Focus()
	default:
		f.file.Focus()
	}
	return f
}

func (f workflowForm) cycleFocus(s *controller.WorkflowSession, delta int) workflowForm {
	visible := f.fields(s)
	idx := 0
	for i, fd := range visible {
		if fd == f.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(visible)) % len(visible)
	return f.focusField(visible[idx])
}

// keepFocusVisible moves the focus back to the file input when the focused
// input was hidden by a toggle.
func (f workflowForm) keepFocusVisible(s *controller.WorkflowSession) workflowForm {
	for _, fd := range f.fields(s) {
		if fd == f.focus {
			return f
		}
	}
	return f.focusField(fieldFile)
}

func (f workflowForm) update(msg tea.Msg) (workflowForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldSecret:
		f.secret, cmd = f.secret.Update(msg)
	case fieldPassword:
		f.password, cmd = f.password.Update(msg)
	default:
		f.file, cmd = f.file.Update(msg)
	}
	return f, cmd
}

func (f workflowForm) View(s *controller.WorkflowSession, busy string) string {
	var b strings.Builder

	b.WriteString("File:      [" + f.file.View() + "]\n")
	b.WriteString(renderPreview(s.Preview))
	b.WriteString("\n")

	b.WriteString("Operation: ")
	b.WriteString(radio(s.Operation == models.Hide, "Hide"))
	b.WriteString("  ")
	b.WriteString(radio(s.Operation == models.Extract, "Extract"))
	b.WriteString("\n")

	if s.SecretDataVisible {
		b.WriteString("Secret data:\n")
		b.WriteString(f.secret.View())
		b.WriteString("\n")
	}

	b.WriteString(checkbox(s.Encrypted, "Encrypt with password"))
	b.WriteString("\n")
	if s.PasswordVisible {
		b.WriteString("Password:  [" + f.password.View() + "]\n")
	}

	b.WriteString("\n")
	if s.Submit.Disabled {
		b.WriteString(busyButtonStyle.Render(busy + " " + s.Submit.Label))
	} else {
		b.WriteString(buttonStyle.Render(s.Submit.Label))
	}
	return b.String()
}

func renderPreview(p controller.Preview) string {
	if !p.Visible {
		return helpStyle.Render("No file selected")
	}

	switch p.State {
	case controller.PreviewLoading:
		return helpStyle.Render("Loading preview...")
	case controller.PreviewNameOnly:
		return "Selected: " + p.Text
	case controller.PreviewUnavailable:
		return errorStyle.Render(p.Text)
	case controller.PreviewReady:
		d := p.Decoded
		caption := fmt.Sprintf("%s, %s", d.MIMEType, fileSize(d.Size))
		if d.Width > 0 && d.Height > 0 {
			caption += fmt.Sprintf(", %dx%d", d.Width, d.Height)
		}
		if d.Render == "" {
			return caption
		}
		return d.Render + "\n" + helpStyle.Render(caption)
	default:
		return ""
	}
}
