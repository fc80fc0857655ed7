package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/bg-remover/internal/app"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
)

// refreshInterval is how often the page re-reads state so that expired
// notifications disappear on time.
const refreshInterval = 250 * time.Millisecond

type removerModel struct {
	ctx           context.Context
	removal       service.RemovalService
	notifications service.NotificationService
	sessionID     string

	input   textinput.Model
	spinner spinner.Model

	state        models.ViewState
	toasts       []models.Notification
	pendingPath  string
	originalPath string
	status       string
	errMsg       string

	copyFn func(string) error
}

func newRemoverModel(ctx context.Context, services *service.Services, sessionID string) removerModel {
	input := textinput.New()
	input.Placeholder = "path/to/image.png"
	input.CharLimit = 4096
	input.Width = 48
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return removerModel{
		ctx:           ctx,
		removal:       services.RemovalService,
		notifications: services.NotificationService,
		sessionID:     sessionID,
		input:         input,
		spinner:       sp,
		state:         models.ViewState{Phase: models.PhaseIdle},
		copyFn:        clipboard.WriteAll,
	}
}

func (m removerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdRefresh(), cmdTick())
}

func (m removerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tea.Batch(m.cmdRefresh(), cmdTick())
	case refreshedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.state = msg.state
		m.toasts = msg.notifications
		return m, nil
	case submittedMsg:
		return m.handleSubmitted(msg)
	case outcomeMsg:
		if msg.outcome.Succeeded() {
			m.status = ""
		}
		return m, m.cmdRefresh()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m removerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, keys.enter):
		// The submit control is disabled while a removal is pending.
		if m.state.IsLoading {
			return m, nil
		}
		m.status = ""
		m.errMsg = ""
		m.pendingPath = strings.TrimSpace(m.input.Value())
		return m, m.cmdSubmit(m.pendingPath)
	case keyMatches(msg, keys.copy):
		if m.state.ProcessedImage == nil {
			m.status = "Nothing to copy yet"
			return m, nil
		}
		return m, m.cmdCopy(*m.state.ProcessedImage)
	case keyMatches(msg, keys.reset):
		m.input.SetValue("")
		m.status = ""
		m.errMsg = ""
		m.originalPath = ""
		return m, m.cmdReset()
	case keyMatches(msg, keys.dismiss):
		if len(m.toasts) == 0 {
			return m, nil
		}
		// toasts are kept in insertion order, the newest is last
		return m, m.cmdDismiss(m.toasts[len(m.toasts)-1].ID)
	case keyMatches(msg, keys.back):
		return m, func() tea.Msg { return NavigateTo{Page: pageWelcome} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m removerModel) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, validators.ErrValidation):
			// the field error comes back with the refreshed state
		case errors.Is(msg.err, store.ErrSubmissionInFlight):
			m.status = app.MsgSubmissionInFlight
		default:
			m.errMsg = humanizeError(msg.err)
		}
		return m, m.cmdRefresh()
	}

	m.originalPath = m.pendingPath
	return m, tea.Batch(m.cmdRefresh(), waitForOutcome(msg.outcome), m.spinner.Tick)
}

func (m removerModel) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(app.MsgUploadLabel))
	b.WriteString("\n")
	b.WriteString("[" + m.input.View() + "]\n")
	if m.state.FieldError != "" {
		b.WriteString(errorStyle.Render(m.state.FieldError))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state.IsLoading {
		b.WriteString(m.spinner.View() + " [" + app.MsgSubmitLoading + "]\n")
	} else {
		b.WriteString("[" + app.MsgSubmitIdle + "]\n")
	}

	if m.state.OriginalImage != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(app.MsgOriginalHeading))
		b.WriteString("\n")
		b.WriteString(valueOrDash(&m.originalPath))
		b.WriteString("\n")
	}
	if m.state.ProcessedImage != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(app.MsgProcessedHeading))
		b.WriteString("\n")
		b.WriteString(fitText(*m.state.ProcessedImage, 512))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	for _, n := range m.toasts {
		b.WriteString("\n")
		b.WriteString(renderToast(n))
		b.WriteString("\n")
	}

	return renderPage(
		viewTitle(app.MsgAppTitle),
		strings.TrimRight(b.String(), "\n"),
		"enter: remove background │ ctrl+y: copy url │ ctrl+r: reset │ ctrl+x: dismiss │ esc: back",
	)
}

func renderToast(n models.Notification) string {
	style := toastStyle
	if n.IsDestructive() {
		style = toastDestructiveStyle
	}
	return style.Render(labelStyle.Render(n.Title) + "\n" + n.Description)
}

func (m removerModel) cmdSubmit(path string) tea.Cmd {
	ctx, removal, sessionID := m.ctx, m.removal, m.sessionID

	return func() tea.Msg {
		upload, err := readUploadFile(path)
		if err != nil {
			return submittedMsg{err: err}
		}
		outcome, err := removal.Submit(ctx, sessionID, upload)
		return submittedMsg{outcome: outcome, err: err}
	}
}

func waitForOutcome(outcome <-chan models.Outcome) tea.Cmd {
	return func() tea.Msg {
		o, ok := <-outcome
		if !ok {
			return outcomeMsg{}
		}
		return outcomeMsg{outcome: o}
	}
}

func (m removerModel) cmdRefresh() tea.Cmd {
	ctx, removal, notifications, sessionID := m.ctx, m.removal, m.notifications, m.sessionID

	return func() tea.Msg {
		state, err := removal.State(ctx, sessionID)
		if err != nil {
			return refreshedMsg{err: err}
		}
		list, err := notifications.List(ctx, sessionID)
		return refreshedMsg{state: state, notifications: list, err: err}
	}
}

func (m removerModel) cmdReset() tea.Cmd {
	ctx, removal, sessionID := m.ctx, m.removal, m.sessionID
	refresh := m.cmdRefresh()

	return func() tea.Msg {
		if err := removal.Reset(ctx, sessionID); err != nil {
			return refreshedMsg{err: err}
		}
		return refresh()
	}
}

func (m removerModel) cmdDismiss(id string) tea.Cmd {
	ctx, notifications, sessionID := m.ctx, m.notifications, m.sessionID
	refresh := m.cmdRefresh()

	return func() tea.Msg {
		if err := notifications.Dismiss(ctx, sessionID, id); err != nil {
			return refreshedMsg{err: err}
		}
		return refresh()
	}
}

func (m removerModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}
