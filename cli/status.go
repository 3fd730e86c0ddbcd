package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusModel struct {
	crossfade progress.Model
}

func getStatusModel() statusModel {
	return statusModel{crossfade: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage())}
}

func (m statusModel) Update(msg tea.Msg, mm *uiModel) (statusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			mm.state = showMenu
		case "e":
			mm.experimental.ToggleMode()
		case "p":
			mm.experimental.SetPressed(!mm.experimental.Pressed())
		case "d":
			mm.distance.Pressed()
			mm.distance.Released()
		}
	}
	return m, nil
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", 6))
}

func (m statusModel) View(mm *uiModel) string {
	if !mm.valid {
		return docStyle.Render("waiting for onroadState...\n\nesc: back")
	}

	state := mm.experimental.VisualState()
	bg := mm.experimental.BackgroundColor()
	hex := fmt.Sprintf("#%02x%02x%02x", bg.R, bg.G, bg.B)
	index, profile := mm.distance.Profile()
	textOpacity, imageOpacity := mm.distance.Opacities()

	return docStyle.Render(fmt.Sprintf(
		"experimental button\n"+
			"engageable: %t\nexperimental mode: %t\nstatus: %s %s %s\nicon: %s\nrotation: %.1f\nhidden: %t\npressed: %t\n\n"+
			"distance button\n"+
			"profile: %d %s\ntraffic mode: %t\ntext opacity: %.2f\nicon %s\n\n"+
			"snapshot rate: %.1f/s\n\n"+
			"e: toggle experimental  p: press  d: distance press  esc: back",
		state.Engageable,
		state.ExperimentalMode,
		swatch(hex), state.BackgroundColorTag.String(), hex,
		state.IconKind.String(),
		state.RotationAngleDeg,
		mm.experimental.Hidden(),
		mm.experimental.Pressed(),
		index, profile.Text,
		mm.distance.TrafficModeActive(),
		textOpacity,
		m.crossfade.ViewAs(imageOpacity),
		mm.updates.Rate(),
	) + "\n")
}
