package views

import (
	"fmt"
	"strconv"
	"strings"

	"adminforge/internal/models"
	"adminforge/internal/probe"
	"adminforge/internal/session"
	"adminforge/internal/ui"
	"adminforge/internal/ui/components"
	"adminforge/internal/ui/messages"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form fields in display order. The OS selector sits between name and IP
// and is not a text input.
const (
	fieldName = iota
	fieldOS
	fieldIP
	fieldPort
	fieldHostname
	fieldUsername
	fieldDomain
	fieldCount
)

// connectionsView manages the saved profiles: list on the left, edit form
// on the right.
type connectionsView struct {
	model *ui.Model

	profiles      []models.SessionConfig
	selectedIndex int

	editing     bool
	editTarget  string // id of the profile being edited
	activeField int
	inputs      []textinput.Model
	osIndex     int

	popup    *components.Popup
	deleteID string

	probing bool
	spin    spinner.Model

	errorMsg string
	status   string
	width    int
	height   int
}

func NewConnectionsView(model *ui.Model) *connectionsView {
	inputs := make([]textinput.Model, 6)
	placeholders := []string{"Nama Profil", "Alamat IP", "Port", "Hostname", "Username", "Nama Domain"}
	for i := range inputs {
		t := textinput.New()
		t.CharLimit = 64
		t.Placeholder = placeholders[i]
		inputs[i] = t
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.WarnStyle

	return &connectionsView{
		model:    model,
		profiles: model.Store().List(),
		inputs:   inputs,
		spin:     s,
		width:    model.GetTerminalWidth(),
		height:   model.GetTerminalHeight(),
	}
}

func (v *connectionsView) Init() tea.Cmd {
	return textinput.Blink
}

// inputFor maps a form field to its text input, or nil for the OS field.
func (v *connectionsView) inputFor(field int) *textinput.Model {
	switch {
	case field == fieldName:
		return &v.inputs[0]
	case field >= fieldIP:
		return &v.inputs[field-1]
	}
	return nil
}

func (v *connectionsView) beginEdit(cfg models.SessionConfig) {
	v.editing = true
	v.editTarget = cfg.ID
	v.activeField = fieldName
	v.errorMsg = ""

	v.inputs[0].SetValue(cfg.Name)
	v.inputs[1].SetValue(cfg.IPAddress)
	v.inputs[2].SetValue(strconv.Itoa(cfg.Port))
	v.inputs[3].SetValue(cfg.Hostname)
	v.inputs[4].SetValue(cfg.Username)
	v.inputs[5].SetValue(cfg.Domain)

	v.osIndex = 0
	for i, os := range models.SupportedOS {
		if os == cfg.OS {
			v.osIndex = i
			break
		}
	}

	v.focusField(fieldName)
}

func (v *connectionsView) focusField(field int) {
	v.activeField = field
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	if in := v.inputFor(field); in != nil {
		in.Focus()
	}
}

// formConfig assembles the edited profile. A bad port falls back to 22.
func (v *connectionsView) formConfig() models.SessionConfig {
	port, err := strconv.Atoi(strings.TrimSpace(v.inputs[2].Value()))
	if err != nil || port <= 0 {
		port = 22
	}
	return models.SessionConfig{
		ID:        v.editTarget,
		Name:      v.inputs[0].Value(),
		OS:        models.SupportedOS[v.osIndex],
		IPAddress: v.inputs[1].Value(),
		Port:      port,
		Hostname:  v.inputs[3].Value(),
		Username:  v.inputs[4].Value(),
		Domain:    v.inputs[5].Value(),
	}
}

func (v *connectionsView) refresh() {
	v.profiles = v.model.Store().List()
	if v.selectedIndex >= len(v.profiles) {
		v.selectedIndex = len(v.profiles) - 1
	}
	if v.selectedIndex < 0 {
		v.selectedIndex = 0
	}
}

func (v *connectionsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.SetTerminalSize(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		if !v.probing {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.ProbeResultMsg:
		v.probing = false
		title := "Tes Koneksi"
		var body string
		if msg.Result.Reachable {
			body = "Server SSH dapat dijangkau.\n\nSidik jari kunci host:\n" + msg.Result.Fingerprint
		} else {
			body = "Server tidak dapat dijangkau.\nPeriksa alamat IP dan port."
			v.model.Log().WithError(msg.Result.Err).Info("probe failed")
		}
		v.popup = components.NewPopup(components.PopupMessage, title, body, 60, 10, v.width, v.height)
		return v, nil

	case tea.KeyMsg:
		if v.popup != nil {
			return v.updatePopup(msg)
		}
		if v.editing {
			return v.updateForm(msg)
		}
		return v.updateList(msg)
	}

	return v, nil
}

func (v *connectionsView) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if v.popup.Type == components.PopupConfirmDelete {
			if v.model.Store().Delete(v.deleteID) {
				v.model.SaveProfiles()
				if v.editTarget == v.deleteID {
					// The edit target is gone; abandon the form.
					v.editing = false
					v.editTarget = ""
				}
				v.refresh()
			}
			v.popup = nil
			v.deleteID = ""
		}
		return v, nil
	case "n", "N", "esc", "enter":
		v.popup = nil
		v.deleteID = ""
		return v, nil
	}
	return v, nil
}

func (v *connectionsView) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.status = ""

	switch msg.String() {
	case "ctrl+c":
		v.model.SetQuitting(true)
		return v, tea.Quit

	case "esc":
		v.model.SetActiveView(ui.ViewBrowser)
		return v, nil

	case "up", "k":
		if v.selectedIndex > 0 {
			v.selectedIndex--
		}
		return v, nil

	case "down", "j":
		if v.selectedIndex < len(v.profiles)-1 {
			v.selectedIndex++
		}
		return v, nil

	case "n":
		created := v.model.Store().Create()
		v.model.SaveProfiles()
		v.refresh()
		for i, p := range v.profiles {
			if p.ID == created.ID {
				v.selectedIndex = i
			}
		}
		v.beginEdit(created)
		return v, textinput.Blink

	case "enter", "e":
		if len(v.profiles) > 0 {
			v.beginEdit(v.profiles[v.selectedIndex])
			return v, textinput.Blink
		}
		return v, nil

	case "d":
		if len(v.profiles) <= 1 {
			v.status = "Profil terakhir tidak dapat dihapus."
			return v, nil
		}
		target := v.profiles[v.selectedIndex]
		v.deleteID = target.ID
		v.popup = components.NewPopup(
			components.PopupConfirmDelete,
			"Hapus Koneksi",
			fmt.Sprintf("Hapus profil \"%s\"?", target.Name),
			50, 8, v.width, v.height,
		)
		return v, nil

	case "u":
		if len(v.profiles) > 0 {
			v.model.SelectProfile(v.profiles[v.selectedIndex])
			v.status = "Koneksi diaktifkan."
		}
		return v, nil

	case "t":
		if v.probing || len(v.profiles) == 0 {
			return v, nil
		}
		v.probing = true
		target := v.profiles[v.selectedIndex]
		return v, tea.Batch(v.spin.Tick, func() tea.Msg {
			return messages.ProbeResultMsg{ProfileID: target.ID, Result: probe.Check(target)}
		})
	}

	return v, nil
}

func (v *connectionsView) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		v.model.SetQuitting(true)
		return v, tea.Quit

	case "esc":
		v.editing = false
		v.editTarget = ""
		v.errorMsg = ""
		return v, nil

	case "tab", "down":
		v.focusField((v.activeField + 1) % fieldCount)
		return v, textinput.Blink

	case "shift+tab", "up":
		v.focusField((v.activeField + fieldCount - 1) % fieldCount)
		return v, textinput.Blink

	case "left":
		if v.activeField == fieldOS {
			v.osIndex = (v.osIndex + len(models.SupportedOS) - 1) % len(models.SupportedOS)
			return v, nil
		}

	case "right":
		if v.activeField == fieldOS {
			v.osIndex = (v.osIndex + 1) % len(models.SupportedOS)
			return v, nil
		}

	case "ctrl+s":
		cfg := v.formConfig()
		if !session.ValidName(cfg.Name) {
			v.errorMsg = "Nama profil wajib diisi."
			return v, nil
		}
		if v.model.Store().Update(cfg) {
			if v.model.Store().Active().ID == cfg.ID {
				// Keep the chat bound to the refreshed values.
				v.model.SelectProfile(cfg)
			}
			v.model.SaveProfiles()
			v.status = "Perubahan disimpan."
		}
		v.editing = false
		v.editTarget = ""
		v.errorMsg = ""
		v.refresh()
		return v, nil

	case "ctrl+u":
		// Use the draft as-is without saving it.
		cfg := v.formConfig()
		if !session.ValidName(cfg.Name) {
			v.errorMsg = "Nama profil wajib diisi."
			return v, nil
		}
		v.model.SelectProfile(cfg)
		v.editing = false
		v.editTarget = ""
		v.status = "Koneksi diaktifkan."
		return v, nil
	}

	if in := v.inputFor(v.activeField); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *connectionsView) View() string {
	if v.popup != nil {
		return v.popup.Render()
	}

	contentWidth := min(v.width-8, 110)
	left := v.renderList(contentWidth / 3)
	var right string
	if v.editing {
		right = v.renderForm(contentWidth - contentWidth/3 - 4)
	} else {
		right = ui.DescriptionStyle.Render("Pilih koneksi untuk diedit atau buat baru (n).")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var footer string
	if v.editing {
		footer = ui.DescriptionStyle.Render("tab/↑↓ pindah field · ←/→ pilih OS · ctrl+s simpan · ctrl+u gunakan tanpa simpan · esc batal")
	} else {
		footer = ui.DescriptionStyle.Render("n baru · enter edit · d hapus · u gunakan · t tes koneksi · esc kembali")
	}

	content := ui.TitleStyle.Render("Daftar Koneksi") + "\n\n" + body + "\n\n" + footer
	if v.errorMsg != "" {
		content += "\n" + ui.ErrorStyle.Render(v.errorMsg)
	}
	if v.status != "" {
		content += "\n" + ui.SuccessStyle.Render(v.status)
	}
	if v.probing {
		content += "\n" + v.spin.View() + ui.DescriptionStyle.Render(" Menguji koneksi...")
	}

	final := ui.WindowStyle.Width(contentWidth).Render(content)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, final)
}

func (v *connectionsView) renderList(width int) string {
	active := v.model.Store().Active()
	var b strings.Builder
	for i, p := range v.profiles {
		prefix := "  "
		line := fmt.Sprintf("%s%s", prefix, p.Name)
		if p.ID == active.ID {
			line += " " + ui.SuccessStyle.Render("●")
		}
		sub := fmt.Sprintf("    %s@%s", p.Username, p.IPAddress)
		if i == v.selectedIndex {
			line = "> " + p.Name
			if p.ID == active.ID {
				line += " " + ui.SuccessStyle.Render("●")
			}
			b.WriteString(ui.SelectedItemStyle.Render(line) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render(line) + "\n")
		}
		b.WriteString(ui.DescriptionStyle.Render(sub) + "\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (v *connectionsView) renderForm(width int) string {
	labels := []string{"Nama Profil", "Sistem Operasi", "Alamat IP", "Port", "Hostname", "Username", "Nama Domain"}
	var b strings.Builder
	b.WriteString(ui.LabelStyle.Render("Detail Koneksi") + "\n\n")

	for field := 0; field < fieldCount; field++ {
		label := labels[field]
		if field == v.activeField {
			b.WriteString(ui.SelectedItemStyle.Render(label) + "\n")
		} else {
			b.WriteString(ui.DescriptionStyle.Render(label) + "\n")
		}

		if field == fieldOS {
			var oss []string
			for i, os := range models.SupportedOS {
				name := string(os)
				if i == v.osIndex {
					oss = append(oss, ui.SelectedItemStyle.Render("["+name+"]"))
				} else {
					oss = append(oss, ui.ItemStyle.Render(" "+name+" "))
				}
			}
			b.WriteString(strings.Join(oss, " ") + "\n")
		} else {
			in := v.inputFor(field)
			in.Width = min(width-4, 48)
			b.WriteString(in.View() + "\n")
		}
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
