package main

import (
	"context"
	"fmt"
	"os"

	"adminforge/internal/ai"
	"adminforge/internal/logging"
	"adminforge/internal/session"
	"adminforge/internal/ui"
	"adminforge/internal/ui/views"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// programModel routes between the top-level views. Each view is its own
// tea.Model sharing state through ui.Model.
type programModel struct {
	uiModel     *ui.Model
	currentView tea.Model
	quitting    bool
}

func initialModel() *programModel {
	log := logging.New()

	store := session.NewStore()
	configPath, err := session.GetDefaultConfigPath()
	if err != nil {
		log.WithError(err).Warn("could not determine config path; profiles will not persist")
		configPath = ""
	} else if err := store.Load(configPath); err != nil {
		log.WithError(err).Warn("could not load saved profiles")
	}

	var gateway *ai.Client
	settings, err := ai.LoadSettings()
	if err != nil {
		log.WithError(err).Warn("could not load settings")
		settings = ai.DefaultSettings()
	}
	gateway, err = ai.NewClient(context.Background(), settings, log)
	if err != nil {
		// The app stays usable without AI features.
		log.WithError(err).Warn("AI gateway unavailable")
		gateway = nil
	}

	uiModel := ui.NewModel(store, gateway, log, configPath)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		uiModel.SetTerminalSize(w, h)
	}

	return &programModel{
		uiModel:     uiModel,
		currentView: views.NewBrowserView(uiModel),
	}
}

func (m *programModel) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m *programModel) updateCurrentView() {
	switch m.uiModel.GetActiveView() {
	case ui.ViewBrowser:
		m.currentView = views.NewBrowserView(m.uiModel)
	case ui.ViewEditor:
		m.currentView = views.NewEditorView(m.uiModel)
	case ui.ViewConnections:
		m.currentView = views.NewConnectionsView(m.uiModel)
	case ui.ViewChat:
		m.currentView = views.NewChatView(m.uiModel)
	default:
		m.currentView = views.NewBrowserView(m.uiModel)
		m.uiModel.SetActiveView(ui.ViewBrowser)
	}
}

func (m *programModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.uiModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	currentActiveView := m.uiModel.GetActiveView()

	var cmd tea.Cmd
	m.currentView, cmd = m.currentView.Update(msg)

	if currentActiveView != m.uiModel.GetActiveView() {
		m.updateCurrentView()
		return m, tea.Batch(cmd, m.currentView.Init())
	}

	return m, cmd
}

func (m *programModel) View() string {
	if m.quitting || m.uiModel.IsQuitting() {
		return "Sampai jumpa!\n"
	}
	return m.currentView.View()
}

func main() {
	m := initialModel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if gw := m.uiModel.Gateway(); gw != nil {
		_ = gw.Close()
	}
	m.uiModel.SaveProfiles()
}
