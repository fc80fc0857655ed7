// Package tui implements the terminal client of the background remover on
// top of bubbletea.
//
// The client talks to the service layer in-process: it shares the removal
// pipeline with the web server and only replaces the presentation.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/utils"
	"github.com/MKhiriev/bg-remover/models"
)

var ErrUserQuit = errors.New("user quit")

const (
	pageWelcome = "welcome"
	pageRemover = "remover"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. The terminal owns one session for its
// whole lifetime.
func (t *TUI) Run(ctx context.Context) error {
	sessionID := utils.NewUUIDGenerator().Generate()
	t.logger.Info().Str("session_id", sessionID).Msg("terminal session started")

	pages := map[string]tea.Model{
		pageWelcome: newWelcomeModel(),
		pageRemover: newRemoverModel(ctx, t.services, sessionID),
	}

	root := NewRootModel(pages, pageWelcome, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
