// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tui.go - The interactive field: a bubbletea program around one
// NumberField, reconfigured live when the config file changes.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/numfield/internal/config"
	"github.com/jeranaias/numfield/internal/ui/components"
	"github.com/jeranaias/numfield/internal/ui/styles"
)

// configReloadedMsg carries the result of a config file reload.
type configReloadedMsg struct {
	cfg *config.Config
	err error
}

// tuiModel is the bubbletea model for the interactive field.
type tuiModel struct {
	args   Args
	field  *components.NumberField
	status *components.StatusBar
	theme  *styles.Theme
	logger *zap.Logger

	fieldWidth int
	locale     string
}

func newTUIModel(s *session, args Args) (*tuiModel, error) {
	state, err := s.newState(nil)
	if err != nil {
		return nil, err
	}
	theme := styles.NewTheme(s.cfg.UI.Theme)

	field := components.NewNumberField(state, theme)
	field.SetLabel(s.cfg.UI.Label)
	field.SetWidth(s.cfg.UI.Width)
	field.SetShowParts(s.cfg.UI.ShowParts)

	return &tuiModel{
		args:       args,
		field:      field,
		status:     components.NewStatusBar(theme),
		theme:      theme,
		logger:     s.logger,
		fieldWidth: s.cfg.UI.Width,
		locale:     s.formatter.ResolvedOptions().Locale,
	}, nil
}

// Init focuses the field.
func (m *tuiModel) Init() tea.Cmd {
	return m.field.Focus()
}

// Update handles messages.
func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.field.Blur()
			return m, tea.Quit
		case "tab", "shift+tab":
			if m.field.Focused() {
				return m, m.field.Blur()
			}
			return m, m.field.Focus()
		}
		m.status.ClearMessage()

	case tea.WindowSizeMsg:
		m.theme.SetSize(msg.Width, msg.Height)
		m.status.Width = msg.Width
		width := m.fieldWidth
		if msg.Width-2 < width {
			width = msg.Width - 2
		}
		m.field.SetWidth(width)
		return m, nil

	case components.CommittedMsg:
		text := msg.Text
		if text == "" {
			text = "empty"
		}
		m.status.SetMessage("Committed "+text, false)
		m.logger.Info("field committed", zap.String("session", msg.Session), zap.String("text", msg.Text))
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

// applyConfig reconfigures the field from a reloaded config. Errors keep the
// current configuration.
func (m *tuiModel) applyConfig(msg configReloadedMsg) {
	if msg.err != nil {
		m.status.SetMessage("Config reload failed: "+msg.err.Error(), true)
		m.logger.Warn("config reload failed", zap.Error(msg.err))
		return
	}

	cfg := msg.cfg
	applyFlagOverrides(cfg, m.args)
	formatter, err := cfg.Field.Formatter()
	if err != nil {
		m.reloadRejected(err)
		return
	}
	rng, err := cfg.Field.Range()
	if err != nil {
		m.reloadRejected(err)
		return
	}
	if err := m.field.Reconfigure(formatter, rng); err != nil {
		m.reloadRejected(err)
		return
	}

	m.field.SetLabel(cfg.UI.Label)
	m.field.SetShowParts(cfg.UI.ShowParts)
	m.locale = formatter.ResolvedOptions().Locale
	m.status.SetMessage("Config reloaded", false)
	m.logger.Info("config reloaded", zap.String("locale", m.locale))
}

func (m *tuiModel) reloadRejected(err error) {
	m.status.SetMessage("Config reload failed: "+err.Error(), true)
	m.logger.Warn("config reload rejected", zap.Error(err))
}

// View renders the header, the field and the status bar.
func (m *tuiModel) View() string {
	header := m.theme.Header.Render(
		m.theme.HeaderTitle.Render("numfield") + "  " + m.theme.RangeText.Render(m.locale),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.field.View(),
		"",
		m.status.View(),
	)
}

// =============================================================================
// COMMAND
// =============================================================================

// HandleTUI runs the interactive field and prints the committed value on exit.
func HandleTUI(args Args) error {
	if err := RequiresTTY("edit a number"); err != nil {
		return err
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	// Log records would corrupt the screen, so they go to a file.
	if cfg.Logging.File == "" {
		if dir, dirErr := config.ConfigDir(); dirErr == nil && os.MkdirAll(dir, 0755) == nil {
			cfg.Logging.File = filepath.Join(dir, "tui.log")
		}
	}
	s, err := sessionFromConfig(cfg, args.Verbose)
	if err != nil {
		return err
	}
	defer s.close()

	model, err := newTUIModel(s, args)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path, pathErr := configPath(args); pathErr == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			go func() {
				err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
					p.Send(configReloadedMsg{cfg: cfg, err: err})
				})
				if err != nil {
					s.logger.Warn("config watcher stopped", zap.String("path", path), zap.Error(err))
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if text := model.field.State().TextValue(); text != "" {
		fmt.Println(text)
	}
	return nil
}
