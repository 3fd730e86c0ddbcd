package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/onroad/buttons"
	"pfeifer.dev/onroad/cereal"
	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/settings"
	"pfeifer.dev/onroad/utils"
)

type mainState int

const (
	showMenu mainState = iota
	showStatus
	showWheels
	showDownload
	showSettings
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(settings.LOOP_DELAY, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	status   statusModel
	wheels   wheelsModel
	download downloadModel
	settings settingsModel

	durable      params.Params
	memory       params.Params
	sub          *cereal.Subscriber[cereal.OnroadState]
	experimental *buttons.ExperimentalButton
	distance     *buttons.DistanceButton
	snapshot     buttons.Snapshot
	valid        bool
	updates      utils.UpdateTracker
	lastPoll     time.Time
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Status", desc: "Watch the button state computed from live onroad snapshots", state: showStatus},
		item{title: "Wheels", desc: "Select the steering wheel icon", state: showWheels},
		item{title: "Download Wheel", desc: "Download a steering wheel and watch its progress", state: showDownload},
		item{title: "Settings", desc: "Modify the onroad UI settings", state: showSettings},
	}

	durable, memory := stores()
	sub := cereal.NewOnroadStateSubscriber()
	m := uiModel{
		list:         list.New(items, list.NewDefaultDelegate(), 0, 0),
		durable:      durable,
		memory:       memory,
		sub:          &sub,
		experimental: buttons.NewExperimentalButton(durable, memory, themePath(time.Now())),
		distance:     buttons.NewDistanceButton(memory, assetRoot()),
		status:       getStatusModel(),
		wheels:       getWheelsModel(),
		download:     getDownloadModel(),
		settings:     getSettingsModel(),
	}
	m.updates.Init(20)
	m.list.Title = "Onroad Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

// readSnapshot drains the subscriber and feeds the headless buttons.
func (m *uiModel) readSnapshot() {
	for m.sub.Ready() {
		state, success := m.sub.Read()
		if !success {
			return
		}
		m.snapshot = state.Snapshot()
		m.valid = true
		m.updates.Update()
		m.experimental.UpdateState(m.snapshot, settings.Settings.LeadInfo)
		m.distance.UpdateState(m.snapshot.Personality, m.snapshot.TrafficModeActive, m.snapshot.UseKaofuiIcons)
	}
}

func (m *uiModel) poll(now time.Time) {
	if now.Sub(m.lastPoll) < settings.PARAM_POLL_INTERVAL {
		return
	}
	m.lastPoll = now
	m.experimental.SetThemePath(themePath(now))
	if m.memory.GetBool(params.UPDATE_WHEEL_IMAGE) {
		m.experimental.UpdateIcon()
	}
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.wheels, _ = m.wheels.Update(msg, &m)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.readSnapshot()
		m.poll(time.Time(msg))
		m.status, _ = m.status.Update(msg, &m)
		m.download, _ = m.download.Update(msg, &m)
		return m, tickEvery()
	case downloadDoneMsg:
		m.download, _ = m.download.Update(msg, &m)
		m.wheels.list.SetItems(wheelItems())
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case showStatus:
		m.status, cmd = m.status.Update(msg, &m)
	case showWheels:
		m.wheels, cmd = m.wheels.Update(msg, &m)
	case showDownload:
		m.download, cmd = m.download.Update(msg, &m)
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showStatus:
		return m.status.View(&m)
	case showWheels:
		return m.wheels.View()
	case showDownload:
		return m.download.View()
	case showSettings:
		return m.settings.View()
	}
	return docStyle.Render(m.list.View())
}

func watch() {
	// the tui owns the terminal, send logs to a file instead
	f, err := tea.LogToFile(filepath.Join(os.TempDir(), "onroad-watch.log"), "watch")
	if err != nil {
		slog.Warn("could not redirect logs", "error", err)
	} else {
		defer f.Close()
	}

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
