package views

import (
	"strings"

	"adminforge/internal/tmpl"
	"adminforge/internal/ui"
	"adminforge/internal/ui/messages"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editorView is the free-form script editor with a live preview pane.
// Every keystroke re-runs the same substitution used by the topic viewer.
type editorView struct {
	model  *ui.Model
	input  textarea.Model
	status string
	width  int
	height int
}

func NewEditorView(model *ui.Model) *editorView {
	ta := textarea.New()
	ta.Placeholder = "Ketik perintah Anda di sini..."
	ta.CharLimit = 0
	ta.SetValue(model.EditorContent())
	ta.Focus()

	v := &editorView{
		model:  model,
		input:  ta,
		width:  model.GetTerminalWidth(),
		height: model.GetTerminalHeight(),
	}
	v.resize()
	return v
}

func (v *editorView) Init() tea.Cmd {
	return textarea.Blink
}

func (v *editorView) resize() {
	paneWidth := max(v.width/2-4, 30)
	v.input.SetWidth(paneWidth)
	v.input.SetHeight(max(v.height-10, 6))
}

func (v *editorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.SetTerminalSize(msg.Width, msg.Height)
		v.resize()
		return v, nil

	case messages.CopiedMsg:
		if msg.Err != nil {
			v.status = "Gagal menyalin ke clipboard."
		} else {
			v.status = "Skrip terkompilasi disalin."
		}
		return v, nil

	case tea.KeyMsg:
		v.status = ""
		switch msg.String() {
		case "esc":
			v.model.SetEditorContent(v.input.Value())
			v.model.SetActiveView(ui.ViewBrowser)
			return v, nil
		case "ctrl+c":
			v.model.SetEditorContent(v.input.Value())
			v.model.SetQuitting(true)
			return v, tea.Quit
		case "ctrl+y":
			compiled := tmpl.Apply(v.input.Value(), v.model.Store().Active())
			return v, copyCmd(compiled)
		case "f1", "f2", "f3", "f4", "f5":
			tokens := tmpl.Placeholders()
			idx := int(msg.String()[1] - '1')
			if idx >= 0 && idx < len(tokens) {
				v.input.InsertString(" " + tokens[idx] + " ")
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.model.SetEditorContent(v.input.Value())
	return v, cmd
}

func (v *editorView) View() string {
	banner := renderBanner(v.model.Store().Active(), v.width)

	var toolbar strings.Builder
	toolbar.WriteString(ui.LabelStyle.Render("Sisipkan Variabel:") + " ")
	for i, token := range tmpl.Placeholders() {
		toolbar.WriteString(ui.CommandStyle.Render("F"+string(rune('1'+i))+" "+token) + " ")
	}

	compiled := tmpl.Apply(v.input.Value(), v.model.Store().Active())
	paneWidth := max(v.width/2-4, 30)

	editorPane := ui.LabelStyle.Render("Editor") + "\n" + v.input.View()

	var preview strings.Builder
	preview.WriteString(ui.LabelStyle.Render("Pratinjau Langsung (Terkompilasi)") + "\n")
	for _, line := range strings.Split(compiled, "\n") {
		preview.WriteString(ui.ChatModelStyle.Render(line) + "\n")
	}
	previewPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ui.Border).
		Padding(0, 1).
		Width(paneWidth).
		Render(preview.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, editorPane, previewPane)
	help := ui.DescriptionStyle.Render("F1-F5 sisipkan variabel · ctrl+y salin hasil · esc kembali")

	out := banner + "\n" + ui.TitleStyle.Render("Editor Perintah") + "\n" +
		toolbar.String() + "\n\n" + body + "\n" + help
	if v.status != "" {
		out += "\n" + ui.SuccessStyle.Render(v.status)
	}
	return out
}
