package cli

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/onroad/settings"
	"pfeifer.dev/onroad/theme"
)

type wheelItem struct {
	name     string
	selected bool
}

func (i wheelItem) Title() string { return i.name }
func (i wheelItem) Description() string {
	if i.selected {
		return "selected"
	}
	return ""
}
func (i wheelItem) FilterValue() string { return i.name }

type wheelsModel struct {
	list list.Model
}

func wheelItems() []list.Item {
	wheels, err := theme.AvailableWheels(wheelsDir())
	if err != nil {
		slog.Warn("could not list wheels", "error", err)
	}
	items := []list.Item{}
	for _, wheel := range wheels {
		items = append(items, wheelItem{name: wheel, selected: wheel == settings.Settings.WheelIcon})
	}
	return items
}

func getWheelsModel() wheelsModel {
	m := wheelsModel{list: list.New(wheelItems(), list.NewDefaultDelegate(), 0, 0)}
	m.list.Title = "Select Wheel"
	return m
}

func (m wheelsModel) Update(msg tea.Msg, mm *uiModel) (wheelsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.Type {
		case tea.KeyEsc:
			mm.state = showMenu
			return m, nil
		case tea.KeyEnter:
			it, ok := m.list.SelectedItem().(wheelItem)
			if !ok {
				return m, nil
			}
			if err := selectWheel(it.name); err != nil {
				slog.Error("could not select wheel", "error", err)
			}
			m.list.SetItems(wheelItems())
			mm.state = showMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m wheelsModel) View() string {
	return docStyle.Render(m.list.View())
}
