package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/bg-remover/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMatches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case keyMatches(keyMsg, keys.buildInfo) && r.current == pageWelcome:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case keyMatches(keyMsg, keys.back) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = nav.Page
		return r, next.Init()
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	// Pages keep their own state; the map holds the latest copy.
	pages := make(map[string]tea.Model, len(r.pages))
	for name, p := range r.pages {
		pages[name] = p
	}
	updated, cmd := page.Update(msg)
	pages[r.current] = updated
	r.pages = pages

	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage(viewTitle("TUI"), "", "")
	}
	return page.View()
}
