package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/utils"
)

type downloadDoneMsg struct {
	err error
}

type downloadModel struct {
	textInput   textinput.Model
	active      bool
	progress    string
	lastResult  string
	activeWheel string
}

func getDownloadModel() downloadModel {
	ti := textinput.New()
	ti.Placeholder = "Frog Wheel"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()
	return downloadModel{textInput: ti}
}

func startDownload(mm *uiModel, wheel string) tea.Cmd {
	utils.Logwe(mm.memory.PutBool(params.CANCEL_WHEEL_DOWNLOAD, false))
	utils.Logwe(mm.memory.Put(params.WHEEL_TO_DOWNLOAD, []byte(wheel)))
	downloader := newDownloader(mm.memory)
	return func() tea.Msg {
		return downloadDoneMsg{err: downloader.Download(context.Background(), wheel)}
	}
}

func (m downloadModel) Update(msg tea.Msg, mm *uiModel) (downloadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if data, err := mm.memory.Get(params.WHEEL_DOWNLOAD_PROGRESS); err == nil {
			m.progress = string(data)
		}
		return m, nil
	case downloadDoneMsg:
		m.active = false
		m.lastResult = m.progress
		if msg.err != nil {
			slog.Warn("wheel download failed", "error", msg.err, "wheel", m.activeWheel)
			m.lastResult = fmt.Sprintf("%s (%v)", m.progress, msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			mm.state = showMenu
			return m, nil
		case tea.KeyCtrlX:
			if m.active {
				utils.Logwe(mm.memory.PutBool(params.CANCEL_WHEEL_DOWNLOAD, true))
			}
			return m, nil
		case tea.KeyEnter:
			wheel := m.textInput.Value()
			if m.active || wheel == "" {
				return m, nil
			}
			m.active = true
			m.activeWheel = wheel
			m.textInput.SetValue("")
			return m, startDownload(mm, wheel)
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m downloadModel) View() string {
	status := m.lastResult
	if m.active {
		status = fmt.Sprintf("%s: %s", m.activeWheel, m.progress)
	}
	return docStyle.Render(fmt.Sprintf(
		"Wheel to download\n\n%s\n\n%s\n\nenter: download  ctrl+x: cancel  esc: back",
		m.textInput.View(),
		status,
	) + "\n")
}
