package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stego-client/internal/controller"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/service"
	"github.com/MKhiriev/go-stego-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const formHelp = "tab next field  enter select file  ctrl+x clear file  ctrl+o hide/extract  ctrl+e encrypt  ctrl+s submit\n" +
	"f1-f4 / ctrl+n / ctrl+p switch tab  ctrl+b about"

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	ctrl     *controller.Controller
	log      *logger.Logger

	forms     []workflowForm
	spinner   spinner.Model
	buildInfo models.AppBuildInfo
	bounds    models.PreviewBounds

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, ctrl *controller.Controller, log *logger.Logger) appModel {
	sessions := ctrl.Page.Sessions()
	forms := make([]workflowForm, len(sessions))
	for i, s := range sessions {
		forms[i] = newWorkflowForm(s.MediaType())
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		services:  services,
		ctrl:      ctrl,
		log:       log,
		forms:     forms,
		spinner:   s,
		buildInfo: services.AppInfoService.GetAppInfo(ctx),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay = errorOverlayModel{}
			}
			return m, nil
		}
		if m.ctrl.Page.Alert.Visible {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.ctrl.Results.DismissAlert()
			}
			return m, nil
		}
		if m.ctrl.Page.Modal.Visible {
			return m.updateModal(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		return m.updateForm(msg)
	case tea.WindowSizeMsg:
		m.bounds = previewBounds(msg.Width, msg.Height)
		return m, nil
	case previewDecodedMsg:
		m.ctrl.Previews.Apply(msg.task, msg.decoded, msg.err)
		return m, nil
	case submitDoneMsg:
		resp, transportErr := msg.resp, humanizeTransportError(msg.err)
		if errors.Is(msg.err, service.ErrSubmissionRejected) {
			// nothing was sent, so the failure belongs in the result modal
			text := msg.err.Error()
			resp, transportErr = models.ProcessResponse{Error: &text}, nil
		}
		effects := m.ctrl.Submissions.Settle(msg.cycle, resp, transportErr)
		return m, m.cmdRunEffects(effects)
	case downloadDueMsg:
		return m, m.cmdDownload(msg.effect)
	case downloadDoneMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).
				Str("location", msg.effect.Download.Location).
				Msg("download failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("Saved %s (%s)", msg.saved.Path, fileSize(msg.saved.Size))
		return m, cmdClearStatus()
	case failedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	i := m.ctrl.Page.ActiveIndex()
	if i >= len(m.forms) {
		return m, nil
	}
	var cmd tea.Cmd
	m.forms[i], cmd = m.forms[i].update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	s := m.ctrl.Page.Active()
	if s == nil {
		return appStyle.Render(renderPage("STEGANOGRAPHY CLIENT", "", ""))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Steganography Client"))
	if m.busy() {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(m.forms[m.ctrl.Page.ActiveIndex()].View(s, m.spinner.View()))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(formHelp))

	body := b.String()
	if m.ctrl.Page.Modal.Visible {
		body += "\n\n" + renderModal(m.ctrl.Page.Modal, s.MediaType())
	}
	if m.ctrl.Page.Alert.Visible {
		body += "\n\n" + renderAlert(m.ctrl.Page.Alert)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) renderTabs() string {
	active := m.ctrl.Page.ActiveIndex()
	tabs := make([]string, 0, len(m.ctrl.Page.Sessions()))
	for i, s := range m.ctrl.Page.Sessions() {
		label := fmt.Sprintf("F%d %s", i+1, s.MediaType().Title())
		if s.Submit.Disabled {
			label += " " + m.spinner.View()
		}
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message}
}

func (m appModel) busy() bool {
	for _, s := range m.ctrl.Page.Sessions() {
		if s.Submit.Disabled {
			return true
		}
	}
	return false
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal := m.ctrl.Page.Modal

	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.ctrl.Results.Dismiss()
	case key.Matches(msg, keys.download):
		if e, ok := m.ctrl.Results.RequestDownload(); ok {
			return m, m.cmdDownload(e)
		}
	case key.Matches(msg, keys.copy):
		if modal.Kind == models.ResultExtractSuccess {
			return m, cmdCopyToClipboard(modal.Data)
		}
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.ctrl.Page.Active()
	if s == nil {
		return m, nil
	}
	i := m.ctrl.Page.ActiveIndex()
	media := s.MediaType()

	switch {
	case key.Matches(msg, keys.nextTab):
		return m.switchTab(m.ctrl.Tabs.Next())
	case key.Matches(msg, keys.prevTab):
		return m.switchTab(m.ctrl.Tabs.Prev())
	case key.Matches(msg, keys.jumpTab):
		idx, _ := tabIndex(msg.String())
		return m.switchTab(m.ctrl.Tabs.Activate(idx))
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.operation):
		if err := m.ctrl.Operations.Toggle(media); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.forms[i] = m.forms[i].keepFocusVisible(s)
		return m, nil
	case key.Matches(msg, keys.encrypt):
		if err := m.ctrl.Encryption.Toggle(media); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.forms[i] = m.forms[i].keepFocusVisible(s)
		return m, nil
	case key.Matches(msg, keys.submit):
		return m.submit(media)
	case key.Matches(msg, keys.clearFile):
		m.forms[i].file.SetValue("")
		_, _ = m.ctrl.Previews.Select(media, nil)
		return m, nil
	case key.Matches(msg, keys.tab):
		m.forms[i] = m.forms[i].cycleFocus(s, 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.forms[i] = m.forms[i].cycleFocus(s, -1)
		return m, nil
	case key.Matches(msg, keys.enter) && m.forms[i].focus == fieldFile:
		return m.selectFile(i, media)
	}

	path := m.forms[i].file.Value()

	var cmd tea.Cmd
	m.forms[i], cmd = m.forms[i].update(msg)
	s.SetSecretData(m.forms[i].secret.Value())
	s.SetPassword(m.forms[i].password.Value())

	// an edited path no longer names the selected file
	if m.forms[i].file.Value() != path && s.SelectedFile != nil {
		_, _ = m.ctrl.Previews.Select(media, nil)
	}
	return m, cmd
}

// switchTab resets every file input after a tab activation, mirroring the
// selections the controller cleared.
func (m appModel) switchTab(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.log.Debug().Err(err).Msg("tab switch ignored")
		return m, nil
	}
	for i := range m.forms {
		m.forms[i].file.SetValue("")
		m.forms[i] = m.forms[i].focusField(fieldFile)
	}
	return m, nil
}

func (m appModel) selectFile(i int, media models.MediaType) (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.forms[i].file.Value())
	if path == "" {
		_, _ = m.ctrl.Previews.Select(media, nil)
		return m, nil
	}

	file, err := m.services.StegoService.Select(path)
	if err != nil {
		_, _ = m.ctrl.Previews.Select(media, nil)
		m.showErrorf(err.Error())
		return m, nil
	}

	task, err := m.ctrl.Previews.Select(media, &file)
	if err != nil {
		m.showErrorf(err.Error())
		return m, nil
	}
	if task == nil {
		return m, nil
	}
	return m, m.cmdDecodePreview(*task)
}

func (m appModel) submit(media models.MediaType) (tea.Model, tea.Cmd) {
	wasBusy := m.busy()

	cycle, err := m.ctrl.Submissions.Begin(media)
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrNoFileSelected):
			// the failure is already shown in the result modal
		case errors.Is(err, controller.ErrSubmitInFlight):
			m.log.Debug().Err(err).Msg("submit ignored")
		default:
			m.showErrorf(err.Error())
		}
		return m, nil
	}

	if wasBusy {
		return m, m.cmdSubmit(cycle)
	}
	return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(cycle))
}

func (m appModel) cmdDecodePreview(task controller.PreviewTask) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreviewService
	bounds := m.bounds
	return func() tea.Msg {
		decoded, err := svc.Decode(ctx, task.MediaType, task.File, bounds)
		return previewDecodedMsg{task: task, decoded: decoded, err: err}
	}
}

func (m appModel) cmdSubmit(cycle *controller.Cycle) tea.Cmd {
	ctx := m.ctx
	svc := m.services.StegoService
	return func() tea.Msg {
		resp, err := svc.Submit(ctx, cycle.ID, cycle.Request)
		return submitDoneMsg{cycle: cycle, resp: resp, err: err}
	}
}

func (m appModel) cmdRunEffects(effects []controller.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		if e.Kind != controller.EffectDownload {
			continue
		}
		cmds = append(cmds, cmdScheduleDownload(e))
	}
	return tea.Batch(cmds...)
}

func (m appModel) cmdDownload(e controller.Effect) tea.Cmd {
	ctx := m.ctx
	svc := m.services.StegoService
	return func() tea.Msg {
		saved, err := svc.Download(ctx, e.Download.Location, e.Download.OriginalName)
		return downloadDoneMsg{effect: e, saved: saved, err: err}
	}
}

func cmdScheduleDownload(e controller.Effect) tea.Cmd {
	if e.Delay <= 0 {
		return func() tea.Msg {
			return downloadDueMsg{effect: e}
		}
	}
	return tea.Tick(e.Delay, func(time.Time) tea.Msg {
		return downloadDueMsg{effect: e}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return failedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// previewBounds sizes image thumbnails to a share of the terminal window.
func previewBounds(width, height int) models.PreviewBounds {
	w := width/2 - 4
	if w < 16 {
		w = 16
	}
	h := height / 3
	if h < 6 {
		h = 6
	}
	return models.PreviewBounds{Width: w, Height: h}
}
