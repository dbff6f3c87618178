package views

import (
	"context"
	"fmt"
	"strings"

	"adminforge/internal/ai"
	"adminforge/internal/catalog"
	"adminforge/internal/models"
	"adminforge/internal/tmpl"
	"adminforge/internal/ui"
	"adminforge/internal/ui/messages"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 32

// browserView is the topic library: a searchable sidebar plus the step
// list of the selected topic with live variable substitution.
type browserView struct {
	model *ui.Model

	search    textinput.Model
	searching bool

	topics     []models.Topic
	topicIndex int
	stepIndex  int

	explaining   bool
	explanations map[string]string

	generating bool
	generated  map[string]string
	genView    viewport.Model

	spin   spinner.Model
	status string
	width  int
	height int
}

func NewBrowserView(model *ui.Model) *browserView {
	search := textinput.New()
	search.Placeholder = "Cari materi..."
	search.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.WarnStyle

	v := &browserView{
		model:        model,
		search:       search,
		topics:       catalog.Filter(""),
		topicIndex:   -1,
		explanations: map[string]string{},
		generated:    map[string]string{},
		spin:         s,
		genView:      viewport.New(0, 0),
		width:        model.GetTerminalWidth(),
		height:       model.GetTerminalHeight(),
	}

	if id := model.SelectedTopicID(); id != "" {
		for i, t := range v.topics {
			if t.ID == id {
				v.topicIndex = i
				break
			}
		}
	}
	v.resize()
	return v
}

func (v *browserView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *browserView) selectedTopic() *models.Topic {
	if v.topicIndex < 0 || v.topicIndex >= len(v.topics) {
		return nil
	}
	return &v.topics[v.topicIndex]
}

func (v *browserView) selectedStep() *models.CommandStep {
	topic := v.selectedTopic()
	if topic == nil || v.stepIndex < 0 || v.stepIndex >= len(topic.Steps) {
		return nil
	}
	return &topic.Steps[v.stepIndex]
}

func (v *browserView) resize() {
	v.genView.Width = max(v.width-sidebarWidth-8, 20)
	v.genView.Height = max(v.height/3, 5)
}

func (v *browserView) applyFilter() {
	v.topics = catalog.Filter(v.search.Value())
	if len(v.topics) == 0 {
		v.topicIndex = -1
	} else if v.topicIndex >= len(v.topics) {
		v.topicIndex = 0
	}
	v.stepIndex = 0
}

func (v *browserView) rememberSelection() {
	if topic := v.selectedTopic(); topic != nil {
		v.model.SetSelectedTopicID(topic.ID)
	}
}

func (v *browserView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.SetTerminalSize(msg.Width, msg.Height)
		v.resize()
		return v, nil

	case spinner.TickMsg:
		if !v.explaining && !v.generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.ExplainResultMsg:
		v.explaining = false
		v.explanations[msg.StepID] = msg.Text
		return v, nil

	case messages.GenerateResultMsg:
		v.generating = false
		v.generated[msg.TopicID] = msg.Text
		v.genView.SetContent(msg.Text)
		v.genView.GotoTop()
		return v, nil

	case messages.CopiedMsg:
		if msg.Err != nil {
			v.status = "Gagal menyalin ke clipboard."
		} else {
			v.status = "Perintah disalin."
		}
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateKeys(msg)
	}

	return v, nil
}

func (v *browserView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		v.applyFilter()
		return v, nil
	case "enter":
		v.searching = false
		v.search.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.applyFilter()
	return v, cmd
}

func (v *browserView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		v.model.SetQuitting(true)
		return v, tea.Quit

	case "/":
		v.searching = true
		v.search.Focus()
		return v, textinput.Blink

	case "up":
		if v.topicIndex > 0 {
			v.topicIndex--
		} else if v.topicIndex < 0 && len(v.topics) > 0 {
			v.topicIndex = 0
		}
		v.stepIndex = 0
		v.rememberSelection()
		return v, nil

	case "down":
		if v.topicIndex < len(v.topics)-1 {
			v.topicIndex++
		}
		v.stepIndex = 0
		v.rememberSelection()
		return v, nil

	case "tab":
		if topic := v.selectedTopic(); topic != nil && v.stepIndex < len(topic.Steps)-1 {
			v.stepIndex++
		}
		return v, nil

	case "shift+tab":
		if v.stepIndex > 0 {
			v.stepIndex--
		}
		return v, nil

	case "pgup":
		v.genView.HalfViewUp()
		return v, nil

	case "pgdown":
		v.genView.HalfViewDown()
		return v, nil

	case "c":
		if step := v.selectedStep(); step != nil {
			command := tmpl.Apply(step.CommandTemplate, v.model.Store().Active())
			return v, copyCmd(command)
		}
		return v, nil

	case "x":
		return v.startExplain()

	case "g":
		return v.startGenerate()

	case "e":
		v.model.SetActiveView(ui.ViewEditor)
		return v, nil

	case "m":
		v.model.SetActiveView(ui.ViewConnections)
		return v, nil

	case "a":
		v.model.SetActiveView(ui.ViewChat)
		return v, nil
	}

	return v, nil
}

func (v *browserView) startExplain() (tea.Model, tea.Cmd) {
	step := v.selectedStep()
	if step == nil {
		return v, nil
	}
	if !v.model.HasGateway() {
		v.status = "Fitur AI tidak tersedia. Setel GEMINI_API_KEY."
		return v, nil
	}
	if _, ok := v.explanations[step.ID]; ok {
		// Toggle off, like pressing the help icon again.
		delete(v.explanations, step.ID)
		return v, nil
	}
	if v.explaining {
		return v, nil
	}

	v.explaining = true
	command := tmpl.Apply(step.CommandTemplate, v.model.Store().Active())
	gw := v.model.Gateway()
	stepID := step.ID
	return v, tea.Batch(v.spin.Tick, func() tea.Msg {
		return messages.ExplainResultMsg{
			StepID: stepID,
			Text:   gw.Explain(context.Background(), command),
		}
	})
}

func (v *browserView) startGenerate() (tea.Model, tea.Cmd) {
	topic := v.selectedTopic()
	if topic == nil {
		return v, nil
	}
	if !v.model.HasGateway() {
		v.status = "Fitur AI tidak tersedia. Setel GEMINI_API_KEY."
		return v, nil
	}
	if v.generating {
		return v, nil
	}

	v.generating = true
	delete(v.generated, topic.ID)
	cfg := v.model.Store().Active()
	gw := v.model.Gateway()
	topicID := topic.ID
	prompt := ai.DeepTaskPrompt(topic.Title)
	contextText := ai.DeepContext(topic.Title, topic.Description, cfg)
	return v, tea.Batch(v.spin.Tick, func() tea.Msg {
		return messages.GenerateResultMsg{
			TopicID: topicID,
			Text:    gw.GenerateComplexConfig(context.Background(), prompt, contextText),
		}
	})
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return messages.CopiedMsg{Err: clipboard.WriteAll(text)}
	}
}

func (v *browserView) View() string {
	banner := renderBanner(v.model.Store().Active(), v.width)
	body := lipgloss.JoinHorizontal(lipgloss.Top, v.renderSidebar(), v.renderDetail())
	help := ui.DescriptionStyle.Render("↑/↓ materi · tab langkah · / cari · c salin · x jelaskan · g buat konfigurasi · e editor · m koneksi · a chat · q keluar")

	out := banner + "\n" + body + "\n" + help
	if v.status != "" {
		out += "\n" + ui.WarnStyle.Render(v.status)
	}
	return out
}

// renderBanner shows the active profile: name, user@ip, domain and OS.
func renderBanner(cfg models.SessionConfig, width int) string {
	line := fmt.Sprintf("Koneksi Aktif: %s  %s  %s  %s",
		ui.TitleStyle.Render(cfg.Name),
		ui.CommandStyle.Render(fmt.Sprintf("%s@%s", cfg.Username, cfg.IPAddress)),
		ui.CommandStyle.Render(cfg.Domain),
		ui.WarnStyle.Render(strings.ToUpper(string(cfg.OS))),
	)
	return ui.BannerStyle.Width(max(width-2, 20)).Render(line)
}

func (v *browserView) renderSidebar() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("AdminForge") + "\n\n")

	if v.searching {
		b.WriteString(v.search.View() + "\n\n")
	} else if v.search.Value() != "" {
		b.WriteString(ui.DescriptionStyle.Render("Filter: "+v.search.Value()) + "\n\n")
	}

	b.WriteString(ui.LabelStyle.Render("Pustaka Materi") + "\n")
	if len(v.topics) == 0 {
		b.WriteString(ui.DescriptionStyle.Render("Materi tidak ditemukan.") + "\n")
	}
	for i, topic := range v.topics {
		line := fmt.Sprintf("  %s", topic.Title)
		if i == v.topicIndex {
			line = "> " + topic.Title
			b.WriteString(ui.SelectedItemStyle.Render(line) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render(line) + "\n")
		}
	}

	return ui.SidebarStyle.Width(sidebarWidth).Height(max(v.height-6, 10)).Render(b.String())
}

func (v *browserView) renderDetail() string {
	topic := v.selectedTopic()
	if topic == nil {
		welcome := ui.TitleStyle.Render("Selamat datang di SysAdmin AI Forge") + "\n\n" +
			ui.DescriptionStyle.Render("Pilih topik dengan ↑/↓, gunakan / untuk mencari,\natau tekan e untuk membuka Editor Perintah.")
		return lipgloss.NewStyle().Padding(1, 2).Render(welcome)
	}

	cfg := v.model.Store().Active()
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(topic.Title) + "  " + ui.DescriptionStyle.Render("["+topic.Category+"]") + "\n")
	b.WriteString(ui.DescriptionStyle.Render(topic.Description) + "\n\n")

	for i, step := range topic.Steps {
		marker := "  "
		titleStyle := ui.ItemStyle
		if i == v.stepIndex {
			marker = "> "
			titleStyle = ui.SelectedItemStyle
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s%d. %s", marker, i+1, step.Title)) + "\n")

		if i != v.stepIndex {
			continue
		}
		if step.Description != "" {
			b.WriteString("   " + ui.DescriptionStyle.Render(step.Description) + "\n")
		}
		command := tmpl.Apply(step.CommandTemplate, cfg)
		for _, line := range strings.Split(command, "\n") {
			b.WriteString("   " + ui.CommandStyle.Render(line) + "\n")
		}
		if len(step.HighlightedVars) > 0 {
			b.WriteString("   " + ui.HighlightVarStyle.Render("Perhatikan: "+strings.Join(step.HighlightedVars, ", ")) + "\n")
		}
		if v.explaining {
			b.WriteString("   " + v.spin.View() + ui.DescriptionStyle.Render(" Meminta penjelasan...") + "\n")
		} else if text, ok := v.explanations[step.ID]; ok {
			b.WriteString("   " + ui.WarnStyle.Render("Penjelasan Gemini") + "\n")
			for _, line := range strings.Split(text, "\n") {
				b.WriteString("   " + ui.DescriptionStyle.Render(line) + "\n")
			}
		}
	}

	b.WriteString("\n" + ui.LabelStyle.Render("Mode Berpikir Gemini") + " " +
		ui.DescriptionStyle.Render("(g) Buat konfigurasi kustom yang kompleks untuk topik ini.") + "\n")
	if v.generating {
		b.WriteString(v.spin.View() + ui.DescriptionStyle.Render(" Sedang berpikir...") + "\n")
	} else if _, ok := v.generated[topic.ID]; ok {
		b.WriteString(v.genView.View() + "\n")
		b.WriteString(ui.DescriptionStyle.Render("pgup/pgdn untuk menggulir") + "\n")
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(max(v.width-sidebarWidth-4, 40)).Render(b.String())
}
