package ui

import (
	"adminforge/internal/ai"
	"adminforge/internal/chat"
	"adminforge/internal/models"
	"adminforge/internal/session"

	"github.com/sirupsen/logrus"
)

// View identifies the active top-level view.
type View int

const (
	ViewBrowser View = iota
	ViewEditor
	ViewConnections
	ViewChat
)

const defaultEditorScript = "# Tulis skrip kustom Anda di sini\n" +
	"# Gunakan F1-F5 untuk menyisipkan variabel\n" +
	"\n" +
	"sudo apt update\n" +
	"sudo apt install -y nginx\n" +
	"\n" +
	"echo \"Menyiapkan {{DOMAIN}} di {{IP}}...\"\n"

// Model is the state shared by every view: the profile store, the chat
// manager, the gateway handle and navigation.
type Model struct {
	store      *session.Store
	gateway    *ai.Client
	chat       *chat.Manager
	log        *logrus.Logger
	configPath string

	activeView    View
	width         int
	height        int
	quitting      bool
	editorContent string

	// Carries the topic to show when entering the browser from elsewhere.
	selectedTopicID string
}

// NewModel wires the shared state. gateway may be nil when no API key is
// configured; AI features then degrade to a localized notice.
func NewModel(store *session.Store, gateway *ai.Client, log *logrus.Logger, configPath string) *Model {
	m := &Model{
		store:         store,
		gateway:       gateway,
		log:           log,
		configPath:    configPath,
		activeView:    ViewBrowser,
		editorContent: defaultEditorScript,
	}
	if gateway != nil {
		m.chat = chat.NewManager(gateway)
		m.chat.Rebind(store.Active())
	}
	return m
}

func (m *Model) Store() *session.Store   { return m.store }
func (m *Model) Gateway() *ai.Client     { return m.gateway }
func (m *Model) Chat() *chat.Manager     { return m.chat }
func (m *Model) Log() *logrus.Logger     { return m.log }
func (m *Model) HasGateway() bool        { return m.gateway != nil }
func (m *Model) GetActiveView() View     { return m.activeView }
func (m *Model) SetActiveView(v View)    { m.activeView = v }
func (m *Model) IsQuitting() bool        { return m.quitting }
func (m *Model) SetQuitting(q bool)      { m.quitting = q }
func (m *Model) GetTerminalWidth() int   { return m.width }
func (m *Model) GetTerminalHeight() int  { return m.height }
func (m *Model) EditorContent() string   { return m.editorContent }
func (m *Model) SetEditorContent(s string) { m.editorContent = s }
func (m *Model) SelectedTopicID() string { return m.selectedTopicID }
func (m *Model) SetSelectedTopicID(id string) { m.selectedTopicID = id }

// SetTerminalSize records the window size for newly created views.
func (m *Model) SetTerminalSize(w, h int) {
	m.width = w
	m.height = h
}

// SelectProfile activates cfg, persists the choice and rebinds the chat
// to the new configuration. Any in-flight chat reply becomes stale.
func (m *Model) SelectProfile(cfg models.SessionConfig) {
	m.store.Select(cfg)
	if m.chat != nil {
		m.chat.Rebind(cfg)
	}
	m.SaveProfiles()
}

// SaveProfiles writes the store to disk; failures are logged, never shown
// as raw errors.
func (m *Model) SaveProfiles() {
	if m.configPath == "" {
		return
	}
	if err := m.store.Save(m.configPath); err != nil {
		m.log.WithError(err).Error("failed to save profiles")
	}
}
