package views

import (
	"context"
	"strings"

	"adminforge/internal/models"
	"adminforge/internal/ui"
	"adminforge/internal/ui/messages"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatView renders the assistant conversation bound to the active
// profile. Exactly one send may be outstanding; the manager rejects the
// rest and the input stays disabled until the reply lands.
type chatView struct {
	model *ui.Model

	transcript viewport.Model
	input      textinput.Model
	spin       spinner.Model
	width      int
	height     int
}

func NewChatView(model *ui.Model) *chatView {
	in := textinput.New()
	in.Placeholder = "Tanya cara memperbaiki izin..."
	in.CharLimit = 0
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.WarnStyle

	v := &chatView{
		model:      model,
		transcript: viewport.New(0, 0),
		input:      in,
		spin:       s,
		width:      model.GetTerminalWidth(),
		height:     model.GetTerminalHeight(),
	}
	v.resize()
	v.refreshTranscript()
	return v
}

func (v *chatView) Init() tea.Cmd {
	if v.model.Chat() != nil && v.model.Chat().Busy() {
		return tea.Batch(textinput.Blink, v.spin.Tick)
	}
	return textinput.Blink
}

func (v *chatView) resize() {
	v.transcript.Width = max(v.width-6, 30)
	v.transcript.Height = max(v.height-8, 5)
	v.input.Width = max(v.width-10, 30)
}

func (v *chatView) refreshTranscript() {
	mgr := v.model.Chat()
	if mgr == nil {
		return
	}
	var b strings.Builder
	for _, msg := range mgr.Transcript() {
		if msg.Role == models.RoleUser {
			b.WriteString(ui.ChatUserStyle.Render("Anda: ") + msg.Text + "\n\n")
		} else {
			b.WriteString(ui.WarnStyle.Render("Bot SysAdmin: ") + ui.ChatModelStyle.Render(msg.Text) + "\n\n")
		}
	}
	v.transcript.SetContent(b.String())
	v.transcript.GotoBottom()
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mgr := v.model.Chat()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.SetTerminalSize(msg.Width, msg.Height)
		v.resize()
		return v, nil

	case spinner.TickMsg:
		if mgr == nil || !mgr.Busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.ChatReplyMsg:
		if mgr != nil {
			mgr.Resolve(msg.Gen, msg.Text, msg.Err)
			v.refreshTranscript()
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			v.model.SetQuitting(true)
			return v, tea.Quit

		case "esc":
			v.model.SetActiveView(ui.ViewBrowser)
			return v, nil

		case "pgup":
			v.transcript.HalfViewUp()
			return v, nil

		case "pgdown":
			v.transcript.HalfViewDown()
			return v, nil

		case "enter":
			if mgr == nil {
				return v, nil
			}
			text := strings.TrimSpace(v.input.Value())
			conv, gen, ok := mgr.Send(text)
			if !ok {
				return v, nil
			}
			v.input.SetValue("")
			v.refreshTranscript()
			return v, tea.Batch(v.spin.Tick, func() tea.Msg {
				reply, err := conv.Send(context.Background(), text)
				return messages.ChatReplyMsg{Gen: gen, Text: reply, Err: err}
			})
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	banner := renderBanner(v.model.Store().Active(), v.width)
	title := ui.TitleStyle.Render("Bot SysAdmin") + " " + ui.DescriptionStyle.Render("Didukung oleh Gemini")

	if v.model.Chat() == nil {
		notice := ui.WarnStyle.Render("Fitur AI tidak tersedia. Setel GEMINI_API_KEY lalu mulai ulang aplikasi.")
		return banner + "\n" + title + "\n\n" + notice + "\n\n" +
			ui.DescriptionStyle.Render("esc kembali")
	}

	body := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.Border).
		Padding(0, 1).
		Render(v.transcript.View())

	inputLine := v.input.View()
	if v.model.Chat().Busy() {
		inputLine = v.spin.View() + ui.DescriptionStyle.Render(" Sedang berpikir...")
	}

	help := ui.DescriptionStyle.Render("enter kirim · pgup/pgdn gulir · esc kembali")
	return banner + "\n" + title + "\n" + body + "\n" + inputLine + "\n" + help
}
