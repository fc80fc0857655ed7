package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/bg-remover/internal/app"
)

// welcomeModel is the landing page. Its only action leads to the remover.
type welcomeModel struct{}

func newWelcomeModel() welcomeModel {
	return welcomeModel{}
}

func (m welcomeModel) Init() tea.Cmd {
	return nil
}

func (m welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMatches(keyMsg, keys.enter) {
		return m, func() tea.Msg { return NavigateTo{Page: pageRemover} }
	}

	return m, nil
}

func (m welcomeModel) View() string {
	return renderPage(
		viewTitle(app.MsgWelcomeTitle),
		"> "+app.MsgWelcomeLinkToForm,
		"enter: open │ v: about",
	)
}
