package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"pfeifer.dev/onroad/settings"
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	saveSettings
)

type settingsItem struct {
	title, desc string
	state       settingsState
	apply       func(s *settings.OnroadSettings, value string) error
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func setBool(target *bool) func(*settings.OnroadSettings, string) error {
	return func(_ *settings.OnroadSettings, value string) error {
		val, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrap(err, "could not parse bool setting")
		}
		*target = val
		return nil
	}
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			m.state = showSettingsMenu
			mm.state = showMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput = textinput.New()
				m.textInput.Focus()
				m.err = nil
			case saveSettings:
				m.state = showSettingsMenu
				mm.state = showMenu
				settings.Settings.Save(mm.durable)
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.err = m.selectedItem.apply(&settings.Settings, m.textInput.Value())
			if m.err == nil {
				m.state = showSettingsMenu
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		errText := ""
		if m.err != nil {
			errText = m.err.Error()
		}
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			errText,
			"(esc to quit)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title: "Set Log Level",
			desc:  "Modify how verbose logging will be for the onroad UI (debug, info, warn, error)",
			state: settingsInput,
			apply: func(s *settings.OnroadSettings, value string) error {
				s.SetLogLevel(value)
				return nil
			},
		},
		settingsItem{
			title: "Lead Info",
			desc:  "Shifts the experimental button down to make room for the lead vehicle info",
			state: settingsInput,
			apply: setBool(&settings.Settings.LeadInfo),
		},
		settingsItem{
			title: "Holiday Themes",
			desc:  "Swap the onroad icons for holiday themed icons on holidays",
			state: settingsInput,
			apply: setBool(&settings.Settings.HolidayThemes),
		},
		settingsItem{
			title: "Save Settings",
			desc:  "Persists any updates to the settings across reboots",
			state: saveSettings,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0)}
	m.list.Title = "Onroad Settings"
	return m
}
